package nbt

import (
	"errors"

	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/gzipcodec"
)

// Unbounded is an effectively infinite byte budget for ReadTag/
// ReadTagCompound callers that don't want to bound decode size.
const Unbounded = budget.Unbounded

// maxInflatedBytes is the hard ceiling on gzip-wrapped expansion, used
// only to clamp an Unbounded (or otherwise huge) caller-supplied maxBytes
// down to something finite before it is handed to the inflater as a
// limit. A caller-supplied maxBytes smaller than this
// ceiling is used as-is, so decompression itself stops at the caller's
// requested budget instead of only being checked after the fact.
const maxInflatedBytes = 512 * 1024 * 1024 // 512 MiB

// WriteTag serializes root as a complete NBT document: id byte, empty
// name, then root's payload. The sink's byte order is forced to
// big-endian for the duration of the call and restored afterward.
func WriteTag(sink *Sink, root Tag) error {
	if root == nil {
		return newErr(KindNullArgument, "write_tag: root is nil")
	}
	saved := sink.Order()
	sink.SetOrder(BigEndian)
	defer sink.SetOrder(saved)

	if err := sink.w.WriteInt(8, uint64(uint8(root.ID()))); err != nil {
		return err
	}
	if err := sink.w.WriteInt(16, 0); err != nil {
		return err
	}
	return root.writeValue(sink.w)
}

// ReadTag decodes a complete NBT document from source: the id/name
// envelope, transparently inflating a gzip-wrapped document first, then
// the tag tree itself bounded by maxBytes (budget.Unbounded for no
// limit). The source's byte order is forced to big-endian for the
// duration of the call and restored afterward.
func ReadTag(source *Source, maxBytes int64) (Tag, error) {
	saved := source.Order()
	source.SetOrder(BigEndian)
	defer source.SetOrder(saved)

	if source.r.Remaining() == 0 {
		return nil, newErr(KindShortRead, "read_tag: empty source")
	}

	if gzipcodec.Looks(source.r.Bytes()[source.r.Position():]) {
		return readGzipTag(source, maxBytes, nil)
	}

	return readTagBody(source, maxBytes, nil)
}

// ReadTagCompound is ReadTag, but requires (and returns) a root whose id
// is TAG_Compound. The id is checked before the payload is decoded, so a
// mismatched root never allocates a partial tree.
func ReadTagCompound(source *Source, maxBytes int64) (*Compound, error) {
	saved := source.Order()
	source.SetOrder(BigEndian)
	defer source.SetOrder(saved)

	want := IDCompound
	var tag Tag
	var err error
	if source.r.Remaining() > 0 && gzipcodec.Looks(source.r.Bytes()[source.r.Position():]) {
		tag, err = readGzipTag(source, maxBytes, &want)
	} else {
		tag, err = readTagBody(source, maxBytes, &want)
	}
	if err != nil {
		return nil, err
	}
	return tag.(*Compound), nil
}

// readTagBody reads the id/name envelope and the tag tree that follows,
// assuming source is already positioned at the envelope and already
// forced to big-endian. If want is non-nil, the root id must equal it.
func readTagBody(source *Source, maxBytes int64, want *ID) (Tag, error) {
	rawID, err := source.r.ReadU8()
	if err != nil {
		return nil, wrapf(KindShortRead, err, "read_tag: root id")
	}
	id := ID(rawID)
	if !id.Valid() {
		return nil, newErr(KindInvalidTagID, "read_tag: root id %d not in {0..12}", rawID)
	}
	if want != nil && id != *want {
		return nil, newErr(KindNotACompound, "read_tag_compound: root is %s, not TAG_Compound", id)
	}

	nameLen, err := source.r.ReadInt(16)
	if err != nil {
		return nil, wrapf(KindShortRead, err, "read_tag: root name length")
	}
	if err := source.r.SeekCur(int(uint16(nameLen))); err != nil {
		return nil, wrapf(KindShortRead, err, "read_tag: skip root name")
	}

	root, err := Create(id)
	if err != nil {
		return nil, err
	}

	tr := budget.New(maxBytes)
	if err := root.readValue(source.r, 0, tr); err != nil {
		return nil, err
	}
	return root, nil
}

// readGzipTag inflates the remainder of source, bounding the inflater
// itself by the caller's maxBytes (clamped to maxInflatedBytes), and
// recurses into readTagBody over a fresh Source wrapping the inflated
// bytes.
func readGzipTag(source *Source, maxBytes int64, want *ID) (Tag, error) {
	compressed, err := source.r.Read(source.r.Remaining())
	if err != nil {
		return nil, wrapf(KindShortRead, err, "read_tag: read gzip payload")
	}

	limit := maxBytes
	if limit <= 0 || limit > maxInflatedBytes {
		limit = maxInflatedBytes
	}

	inflated, err := gzipcodec.Inflate(compressed, limit)
	if err != nil {
		if errors.Is(err, gzipcodec.ErrTooLarge) {
			return nil, wrapf(KindTagTooBig, err, "read_tag: inflated size exceeds %d-byte budget", limit)
		}
		return nil, wrapf(KindBadCompression, err, "read_tag: inflate")
	}

	fresh := NewSource(inflated)
	fresh.SetOrder(BigEndian)
	return readTagBody(fresh, maxBytes, want)
}
