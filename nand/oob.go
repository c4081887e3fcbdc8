package nand

import "fmt"

// Region is a byte range inside the spare area.
type Region struct {
	Offset int
	Length int
}

// Layout maps section indexes to the disjoint ECC and free regions of
// the spare area. Both accessors return ErrOutOfRange once the section
// index passes the last region.
type Layout interface {
	ECC(section int) (Region, error)
	Free(section int) (Region, error)
}

// LayoutFor returns the 4-bit ECC spare-area layout for a geometry, or
// ErrInvalidGeometry when the page or spare area cannot hold it.
func LayoutFor(geom Geometry) (Layout, error) {
	chunks := geom.Chunks()
	if chunks == 0 || geom.OOBSize < 16 {
		return nil, fmt.Errorf("%w: page %d OOB %d too small for 4-bit ECC",
			ErrInvalidGeometry, geom.PageSize, geom.OOBSize)
	}

	switch {
	case chunks == 1:
		return smallPageLayout{oobSize: geom.OOBSize}, nil
	case chunks == 4 || chunks == 8:
		return largePageLayout{chunks: chunks}, nil
	default:
		return nil, fmt.Errorf("%w: %d chunks per page",
			ErrInvalidGeometry, chunks)
	}
}

// smallPageLayout places the ten 4-bit ECC bytes on a one-chunk page
// while preserving the manufacturer's bad-block marker (byte 5) and
// leaving room for a flash bad-block-table signature in the first free
// bytes.
type smallPageLayout struct {
	oobSize int
}

func (l smallPageLayout) ECC(section int) (Region, error) {
	switch section {
	case 0:
		return Region{Offset: 0, Length: 5}, nil
	case 1:
		return Region{Offset: 6, Length: 2}, nil
	case 2:
		return Region{Offset: 13, Length: 3}, nil
	}

	return Region{}, ErrOutOfRange
}

func (l smallPageLayout) Free(section int) (Region, error) {
	switch section {
	case 0:
		return Region{Offset: 8, Length: 5}, nil
	case 1:
		return Region{Offset: 16, Length: l.oobSize - 16}, nil
	}

	return Region{}, ErrOutOfRange
}

// largePageLayout gives each chunk a 16-byte-aligned window: ten ECC
// bytes at 16*section+6 and six free bytes at the start of the next
// window. The first free window is reserved for the bad-block table and
// not enumerated.
type largePageLayout struct {
	chunks int
}

func (l largePageLayout) ECC(section int) (Region, error) {
	if section >= l.chunks {
		return Region{}, ErrOutOfRange
	}

	return Region{Offset: section*16 + 6, Length: 10}, nil
}

func (l largePageLayout) Free(section int) (Region, error) {
	if section >= l.chunks-1 {
		return Region{}, ErrOutOfRange
	}

	return Region{Offset: (section + 1) * 16, Length: 6}, nil
}
