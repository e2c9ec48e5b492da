// Package uuid implements immutable 128-bit UUIDs as defined by RFC 4122 and
// RFC 9562: parsing and rendering across every standard representation,
// variant and version classification, per-version field extraction, the
// Microsoft mixed-endian GUID byte order, and generation of versions 1
// through 8.
//
// A UUID is a 16-byte value. The same value round-trips between four
// representations:
//   - the canonical dashed string "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
//     (also accepted with a urn:uuid: prefix or surrounding braces),
//   - the 32-character hex string without dashes,
//   - the 16 raw bytes in network byte order,
//   - the unsigned 128-bit decimal integer.
//
// Basic Usage:
//
//	// Generate a sortable UUIDv7 (the package default)
//	id, err := uuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from any accepted form
//	id, err := uuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Classify and extract fields
//	fmt.Println(id.Variant(), id.Version())
//	if t, err := id.Time(); err == nil {
//	    fmt.Println(t)
//	}
//
// Expecting a particular version:
//
//	id, err := uuid.ParseAs(s, uuid.VersionTimeOrdered)
//	if err != nil {
//	    // well-formed text of the wrong version fails here
//	}
//
// Custom Generator:
//
//	// Inject the clock, random source, node identity and stable store
//	gen := uuid.NewGenerator(
//	    uuid.WithSaver(uuid.FileSaver{Path: "/var/lib/app/uuid-state.json"}),
//	)
//	id, err := gen.NewV1()
//
// Microsoft GUIDs:
//
// The GUID type carries the same value in the mixed-endian byte order used
// by Microsoft platforms. Converting between UUID and GUID re-encodes the
// first three fields; the textual form never changes.
//
// Comparing:
//
// Compare and Equal accept operands in any representation, including
// foreign UUID types that implement encoding.BinaryMarshaler or
// fmt.Stringer, and order them deterministically.
//
// Thread Safety:
//
// All operations are thread-safe. The default generator can be used
// concurrently from multiple goroutines without additional synchronization.
//
// The Nil UUID (all zeros) and Max UUID (all ones) are sentinels: both
// report the RFC variant and neither carries a version. Asking them for one
// panics with ErrNoVersion.
package uuid
