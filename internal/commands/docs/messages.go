package docscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const renderDirectoryMessageType = "docsite.docs.render_directory"

// RenderDirectoryCommand renders every document in the content directory to
// standalone HTML files under OutputDir. AsciiDoc sources are written as-is
// (they carry rendered HTML already); Markdown bodies go through goldmark.
type RenderDirectoryCommand struct {
	// OutputDir selects the directory rendered HTML files are written to.
	OutputDir string `json:"output_dir"`
	// Extensions overrides the goldmark extension set for this run.
	Extensions []string `json:"extensions,omitempty"`
	// HardWraps toggles goldmark hard line breaks for this run.
	HardWraps bool `json:"hard_wraps,omitempty"`
	// DryRun renders documents without writing any files.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (RenderDirectoryCommand) Type() string { return renderDirectoryMessageType }

// Validate ensures the output directory is present before handlers execute.
func (cmd RenderDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docsite.docs.render_directory.output_dir_required", "output directory is required")
			}
			return nil
		})),
	)
}
