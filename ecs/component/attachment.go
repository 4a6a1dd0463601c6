package component

import "github.com/jakecoffman/cp"

// Attachment keeps an entity at a fixed offset from its owner. Owner holds
// the raw ecs.Entity value.
type Attachment struct {
	Owner  uint64
	Offset cp.Vector
}

var AttachmentComponent = NewComponent[Attachment]()
