// Package wire implements the CBOR framing for protocol artifacts
// exchanged between a CEC and its simulations.
//
// # Encoding
//
// Encoding is deterministic: canonical key ordering, definite lengths,
// Unix timestamps. The same artifact always encodes to the same bytes,
// so envelopes can be compared and deduplicated byte-wise.
//
// Decoding is lenient for forward compatibility: unknown fields are
// ignored and duplicate map keys are tolerated (last wins).
//
// # Envelopes
//
// An Envelope tags a payload with its message type and the simulation it
// concerns. The payload stays CBOR-encoded until the receiver dispatches
// on the tag:
//
//	data, err := wire.Encode(wire.TypePowerMeasurement, simID, measurement)
//	...
//	env, err := wire.Decode(data)
//	switch env.Type {
//	case wire.TypePowerMeasurement:
//		var m s2.PowerMeasurement
//		err = env.DecodePayload(&m)
//	}
//
// This package frames and encodes only; it owns no transport.
package wire
