package recording

import (
	"fmt"

	"github.com/gogpu/batch"
)

// CommandType identifies a renderer call.
type CommandType uint8

const (
	CmdBeginRender CommandType = iota // Buffers handed over
	CmdDrawBatch                      // One batch drawn
	CmdEndRender                      // Frame complete
)

var commandTypeNames = [...]string{
	CmdBeginRender: "BeginRender",
	CmdDrawBatch:   "DrawBatch",
	CmdEndRender:   "EndRender",
}

// String returns the name of the renderer call.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return fmt.Sprintf("CommandType(%d)", t)
}

// Command is one recorded renderer call. Batch is only set for
// CmdDrawBatch; VertexCount and IndexCount only for CmdBeginRender.
type Command struct {
	Type        CommandType
	Batch       batch.BatchInfo
	VertexCount int
	IndexCount  int
}

// String returns a short description of the command.
func (c Command) String() string {
	switch c.Type {
	case CmdBeginRender:
		return fmt.Sprintf("BeginRender(%d vertices, %d indices)", c.VertexCount, c.IndexCount)
	case CmdDrawBatch:
		return fmt.Sprintf("DrawBatch(texture %d, start %d, count %d)",
			c.Batch.State.Texture, c.Batch.StartIndex, c.Batch.IndexCount)
	default:
		return c.Type.String()
	}
}
