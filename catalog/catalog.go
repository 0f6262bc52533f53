// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"github.com/danielhkuo/truck-check/models"
)

// Section is one fixed checklist section: an id that is stable across
// application versions (it is the merge key for stored data), a display
// title, and the ordered item labels.
type Section struct {
	ID         string
	Title      string
	ItemLabels []string
	IsSignOff  bool
}

// Checklist sections and items per the Virginia Department of Health
// Transport Vehicle Standards. Section ids must never be renamed.
var sections = []Section{
	{
		ID:    "general",
		Title: "General",
		ItemLabels: []string{
			"Current State Inspection",
			"Exterior Clean",
			"Interior Clean",
			"Current EMS Permit",
			"Seatbelts for All",
			"Meds protected from climate extremes",
		},
	},
	{
		ID:    "bls-equipment",
		Title: "BLS Equipment",
		ItemLabels: []string{
			"AED with set of pads (2) or combination device with manual option",
			"Pocket masks (2)",
			"O/P Airways (6) - Sizes 0-5 (1 each)",
			"N/P Airways (4) - Various sizes",
			"Soluble lubricant",
			"Adult BVM with Adult/Peds Mask (1 each)",
			"Infant BVM with Infant Mask",
			"Oxygen Apparatus - 1150 psi minimum",
			"Adult High Concentration (NRB) Masks (4)",
			"Peds High Concentration (NRB) Masks (4)",
			"Adult Nasal Cannulae (4)",
			"Child Nasal Cannulae (4)",
		},
	},
	{
		ID:    "dressing-supplies",
		Title: "Dressing/Supplies",
		ItemLabels: []string{
			"Durable First Aid Kit",
			"Trauma Dressings 8x10 (4)",
			"Sterile 4x4s (24)",
			"Occlusive Dressings 3x8 (4)",
			"Assorted Roller Gauze (12)",
			"Cravats (10)",
			"Tape 1\" and 2\" (4 rolls total)",
			"Trauma Scissors (1)",
			"Emesis Basins (2)",
			"NS for Irrigation (4L)",
			"Alcohol preps (12)",
			"Exam Gloves - 10 pairs per size",
			"Disposable Gowns (4)",
			"Face-shield/Eyewear (4)",
			"Infectious Waste Bags (4)",
		},
	},
	{
		ID:    "warning-tools",
		Title: "Warning Devices/Tools",
		ItemLabels: []string{
			"Adjustable Wrench, 10\" (1)",
			"Standard Screwdriver (1)",
			"Phillips Screwdriver (1)",
			"Center Punch (1)",
			"Flares or Cones/Triangles (3)",
			"Current USDOT ERG (1)",
			"Emergency Lights All Sides",
			"Minimum 2 Flashing in Grill",
			"Audible Warning Device",
			"Agency Markings with 3\" Min. Lettering",
			"4\" Min. Reflective Band",
			"D-Cell Flashlight (1)",
			"ABC Extinguisher 5# (2)",
			"Traffic safety apparel (2)",
			"Sharps Container",
			"No Smoking Sign",
		},
	},
	{
		ID:    "patient-assessment",
		Title: "Patient Assessment Equipment",
		ItemLabels: []string{
			"Adult Stethoscope (2)",
			"Peds Stethoscope (1)",
			"B/P Cuffs: Child, Adult, Large (1 each)",
			"Penlight (1)",
			"Current Medical Protocols (1)",
			"Pocket Mask (2)",
			"O/P Airways (6) - Sizes 0-5 (1 each)",
			"N/P Airways (4) - Various sizes",
			"Adult BVM with Adult/Peds Mask (1 each)",
			"Infant BVM with Infant Mask",
			"Oxygen Apparatus - 1150 psi minimum",
			"Adult High Concentration (NRB) Masks (4)",
			"Peds High Concentration (NRB) Masks (4)",
			"Adult Nasal Cannulae (4)",
			"Child Nasal Cannulae (4)",
		},
	},
	{
		ID:    "suction",
		Title: "Suction Equipment",
		ItemLabels: []string{
			"Battery Powered Portable Suction",
			"Suction Catheters: Rigid tonsil tip",
			"FR18, FR14, FR8 & FR6 (2 each)",
		},
	},
	{
		ID:    "splinting",
		Title: "Splinting",
		ItemLabels: []string{
			"Rigid Collars (SA, MA, LA & Peds - 3 each)",
			"Traction splint with ankle hitch (adult and pediatric)",
			"Padded board splint upper extremity (2)",
			"Padded board splint lower extremity (2)",
			"Backboard (2)",
			"Short spine board (1)",
			"Pediatric immobilization device (1)",
			"Cervical immobilization device set (2)",
		},
	},
	{
		ID:    "obstetrical",
		Title: "Obstetrical Kit",
		ItemLabels: []string{
			"Pair of sterile surgical gloves (2)",
			"Scissors or other cutting instrument (1)",
			"Umbilical cord ties (4)",
			"Sanitary pads (1)",
			"Cloth/Disposable hand towels (2)",
			"Soft tip bulb syringe (1)",
		},
	},
	{
		ID:    "linens",
		Title: "Linens",
		ItemLabels: []string{
			"Towels (2)",
			"Blankets (2)",
			"Pillows (2)",
			"Pillow cases (2)",
			"Sheets (4)",
			"Male Urinal (1)",
			"Bedpan and toilet paper (1)",
		},
	},
	{
		ID:    "emt-enhanced",
		Title: "EMT-Enhanced Equipment",
		ItemLabels: []string{
			"Lockable Drug Compartment",
			"Drug Kit (EMT-E)",
			"Assorted IV, IM, SQ Delivery Devices",
			"Supra-glottic Airway (1)",
			"Complete ETT Kit (1)",
		},
	},
	{
		ID:    "sign-off",
		Title: "Inspection Sign-Off",
		ItemLabels: []string{
			"Inspector Name",
			"Signature",
			"Date",
		},
		IsSignOff: true,
	},
}

// Sections returns the ordered section configuration. Callers must not
// mutate the returned slice.
func Sections() []Section {
	return sections
}

// IDs returns the section ids in catalog order.
func IDs() []string {
	ids := make([]string, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	return ids
}

// Find returns the section with the given id.
func Find(id string) (Section, bool) {
	for _, s := range sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// DefaultSection seeds a fresh InspectionSection for the given catalog
// section: every item unchecked, with a newly generated id.
func DefaultSection(s Section) models.InspectionSection {
	items := make([]models.ChecklistItem, len(s.ItemLabels))
	for i, label := range s.ItemLabels {
		items[i] = models.ChecklistItem{
			ID:   models.NewItemID(),
			Text: label,
		}
	}
	return models.InspectionSection{Title: s.Title, Items: items}
}

// DefaultSections seeds the full default section map for a new record.
func DefaultSections() map[string]models.InspectionSection {
	out := make(map[string]models.InspectionSection, len(sections))
	for _, s := range sections {
		out[s.ID] = DefaultSection(s)
	}
	return out
}
