package codec

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"omegraph/internal/domain"
)

// MsgpackCodec handles MessagePack export. Field names follow the json tags
// so every format shares one schema.
type MsgpackCodec struct{}

// NewMsgpackCodec creates a new MessagePack codec
func NewMsgpackCodec() *MsgpackCodec {
	return &MsgpackCodec{}
}

// Format returns the codec format identifier
func (c *MsgpackCodec) Format() string {
	return "msgpack"
}

// Export exports graph data to MessagePack
func (c *MsgpackCodec) Export(graph *domain.Graph, w io.Writer) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	encoder.SetSortMapKeys(true)

	if err := encoder.Encode(graph); err != nil {
		return fmt.Errorf("failed to encode msgpack: %w", err)
	}

	return nil
}
