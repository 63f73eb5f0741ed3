package model

type AttachmentType string

const (
	AttachmentLink     AttachmentType = "link"
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
)

// Valid reports whether the type is one of the enumerated kinds.
func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentLink, AttachmentImage, AttachmentDocument:
		return true
	}
	return false
}

// Attachment is a link, image or document attached to a task.
type Attachment struct {
	Type AttachmentType `json:"type"`
	URL  string         `json:"url"`
}
