// Package gords is a thin alternate naming surface over package rds, kept
// for hosts that embed this module by importing the repo root directly
// rather than the rds subpackage (e.g. a constrained build that vendors a
// single package path). It is explicitly out of scope per spec §1 beyond
// this shim: real decoding logic lives in rds.
package gords

import "gords/rds"

type (
	Group      = rds.Group
	Block      = rds.Block
	BLER       = rds.BLER
	Decoder    = rds.Decoder
	DataRecord = rds.DataRecord
	Config     = rds.Config
)

const (
	BLERNone  = rds.BLERNone
	BLER1To2  = rds.BLER1To2
	BLER3To5  = rds.BLER3To5
	BLER6Plus = rds.BLER6Plus
	VersionA  = rds.VersionA
	VersionB  = rds.VersionB
)

// NewDecoder constructs a Decoder bound to a fresh DataRecord, the
// minimal entry point a constrained host needs.
func NewDecoder(cfg Config) (*Decoder, *DataRecord) {
	data := rds.NewDataRecord()
	return rds.NewDecoder(cfg, data), data
}

// DefaultConfig re-exports rds.DefaultConfig.
func DefaultConfig() Config { return rds.DefaultConfig() }
