package page

import "github.com/google/uuid"

// FrameToken is an opaque identity a renderer mints once and keeps
// alongside its own last-seen Age, so a caller juggling several
// independent framebuffers (split view, recording, remote mirror) has a
// stable handle to reason about which Age belongs to which renderer. The
// core never interprets the token's value.
type FrameToken uuid.UUID

// NewFrameToken mints a fresh renderer identity.
func NewFrameToken() FrameToken {
	return FrameToken(uuid.New())
}

// String renders the token in canonical UUID form.
func (f FrameToken) String() string {
	return uuid.UUID(f).String()
}

// Framebuffer pairs a renderer's identity with the last Page.Age it
// drew. It is a convenience the core offers to its out-of-scope
// renderer collaborator — nothing else in this module reads it.
type Framebuffer struct {
	Token    FrameToken
	LastSeen Age
}

// NewFramebuffer starts a framebuffer at AgeNull, so its first frame
// redraws everything.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{Token: NewFrameToken(), LastSeen: AgeNull}
}

// ShouldRedraw reports whether cellAge is newer than this framebuffer's
// last-seen age.
func (f *Framebuffer) ShouldRedraw(cellAge Age) bool {
	return Dirty(cellAge, f.LastSeen)
}

// Advance records that this framebuffer has now drawn through
// currentAge.
func (f *Framebuffer) Advance(currentAge Age) {
	f.LastSeen = currentAge
}
