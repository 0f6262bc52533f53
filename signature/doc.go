// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package signature defines the four-operation boundary to the signature
widget (Clear, IsEmpty, Export, Import) and an in-memory Pad that stores
the widget's data-URI export for the current inspection.
*/
package signature
