package adminclient

// Attachment is a file field on a form. A field either still points at the
// stored URL or carries freshly picked bytes; only the latter is ever sent,
// omission preserves the stored file server-side.
type Attachment interface {
	isAttachment()
}

// ExistingAttachment references a file already stored on the server.
type ExistingAttachment struct {
	URL string
}

func (ExistingAttachment) isAttachment() {}

// NewAttachment is a file picked by the user, not yet uploaded.
type NewAttachment struct {
	Name string
	Data []byte
}

func (NewAttachment) isAttachment() {}
