package dtrie

import (
	"fmt"

	"github.com/dtrie-go/dtrie/internal/buf"
	"github.com/dtrie-go/dtrie/internal/format"
	"github.com/dtrie-go/dtrie/internal/mmfile"
)

// Image is an opened trie image. It is safe for concurrent use by any
// number of goroutines: after Open/OpenBytes returns, an Image never
// mutates.
type Image struct {
	data    []byte
	cleanup func() error
}

// Open memory-maps the image at path (falling back to a full read on
// platforms without mmap support) and validates its basic shape.
func Open(path string) (*Image, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("dtrie: open %s: %w", path, err)
	}
	if err := mmfile.PreFault(data); err != nil {
		_ = cleanup()
		return nil, fmt.Errorf("dtrie: open %s: %w", path, err)
	}
	img, err := OpenBytes(data)
	if err != nil {
		_ = cleanup()
		return nil, err
	}
	img.cleanup = cleanup
	return img, nil
}

// OpenBytes wraps an already-loaded image buffer, such as one embedded via
// go:embed or produced in-process by Build. The caller retains ownership of
// data and must not mutate it for the Image's lifetime.
func OpenBytes(data []byte) (*Image, error) {
	if len(data)%(format.BlockSize*format.WordSize) != 0 {
		return nil, fmt.Errorf("dtrie: image length %d is not a multiple of %d bytes", len(data), format.BlockSize*format.WordSize)
	}
	return &Image{data: data}, nil
}

// Close releases any resources backing the image (the mmap, when one was
// used). It is a no-op for images opened via OpenBytes.
func (img *Image) Close() error {
	if img.cleanup == nil {
		return nil
	}
	err := img.cleanup()
	img.cleanup = nil
	return err
}

// Len returns the number of 32-bit node words in the image.
func (img *Image) Len() int {
	return len(img.data) / format.WordSize
}

// node reads the word at index id, reporting false if id falls outside the
// image. Corruption or truncation at query time is never a panic: it
// degrades to "not found" per the node-level bounds contract.
func (img *Image) node(id uint32) (format.Node, bool) {
	off := int(id) * format.WordSize
	if !buf.Has(img.data, off, format.WordSize) {
		return 0, false
	}
	return format.Node(format.ReadU32(img.data, off)), true
}
