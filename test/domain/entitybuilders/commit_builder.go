//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/nextver/internal/domain/entities"
)

const (
	defaultCommitID    = "0123456789abcdef0123456789abcdef01234567"
	defaultCommitTitle = "change something"
)

// CommitBuilder helps create parsed commits with a fluent interface.
type CommitBuilder struct {
	*testkit.BaseBuilder
	id         string
	rawMessage string
	commitType string
	scope      string
	breaking   bool
	title      string
	body       string
	author     *entities.Author
}

// NewCommitBuilder creates a new commit builder with sensible defaults.
func NewCommitBuilder() *CommitBuilder {
	return &CommitBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          defaultCommitID,
		commitType:  "fix",
		title:       defaultCommitTitle,
	}
}

// WithID sets the commit ID.
func (b *CommitBuilder) WithID(id string) *CommitBuilder {
	b.id = id
	return b
}

// WithRawMessage sets the unparsed message.
func (b *CommitBuilder) WithRawMessage(message string) *CommitBuilder {
	b.rawMessage = message
	return b
}

// WithType sets the commit type.
func (b *CommitBuilder) WithType(commitType string) *CommitBuilder {
	b.commitType = commitType
	return b
}

// WithScope sets the commit scope.
func (b *CommitBuilder) WithScope(scope string) *CommitBuilder {
	b.scope = scope
	return b
}

// WithBreakingChange flags the commit as breaking.
func (b *CommitBuilder) WithBreakingChange() *CommitBuilder {
	b.breaking = true
	return b
}

// WithTitle sets the title.
func (b *CommitBuilder) WithTitle(title string) *CommitBuilder {
	b.title = title
	return b
}

// WithBody sets the body.
func (b *CommitBuilder) WithBody(body string) *CommitBuilder {
	b.body = body
	return b
}

// WithAuthor sets the author.
func (b *CommitBuilder) WithAuthor(name, email string) *CommitBuilder {
	b.author = &entities.Author{Name: name, Email: email}
	return b
}

// Build creates the commit (satisfies testkit.Builder interface).
func (b *CommitBuilder) Build() interface{} {
	return b.BuildCommit()
}

// BuildCommit creates the commit with a concrete return type. Without an
// explicit raw message, one is derived from the type, scope, title and body.
func (b *CommitBuilder) BuildCommit() entities.Commit {
	raw := b.rawMessage
	if raw == "" {
		raw = b.headline()
		if b.body != "" {
			raw += "\n\n" + b.body
		}
	}
	return entities.Commit{
		ID:                b.id,
		RawMessage:        raw,
		Type:              b.commitType,
		Scope:             b.scope,
		HasBreakingChange: b.breaking,
		Title:             b.title,
		Body:              b.body,
		Author:            b.author,
	}
}

func (b *CommitBuilder) headline() string {
	if b.commitType == "" {
		return b.title
	}
	header := b.commitType
	if b.scope != "" {
		header += "(" + b.scope + ")"
	}
	if b.breaking {
		header += "!"
	}
	return header + ": " + b.title
}

// Reset clears the builder state, allowing it to be reused.
func (b *CommitBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = defaultCommitID
	b.rawMessage = ""
	b.commitType = "fix"
	b.scope = ""
	b.breaking = false
	b.title = defaultCommitTitle
	b.body = ""
	b.author = nil
	return b
}

// Clone creates a deep copy of the CommitBuilder.
func (b *CommitBuilder) Clone() testkit.Builder {
	var author *entities.Author
	if b.author != nil {
		copied := *b.author
		author = &copied
	}
	return &CommitBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		rawMessage:  b.rawMessage,
		commitType:  b.commitType,
		scope:       b.scope,
		breaking:    b.breaking,
		title:       b.title,
		body:        b.body,
		author:      author,
	}
}
