package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	styerr "github.com/younextz/screenshot-styler/pkg/errors"
	"github.com/younextz/screenshot-styler/pkg/pipeline"
	"github.com/younextz/screenshot-styler/pkg/render/code"
)

const maxCodeSize = 256 << 10

type codeFlags struct {
	theme     string
	language  string
	fontSize  float64
	embedFont bool
}

// codeCommand renders a highlighted source file.
func (c *CLI) codeCommand() *cobra.Command {
	var (
		f  styleFlags
		cf codeFlags
	)

	cmd := &cobra.Command{
		Use:   "code [file]",
		Short: "Render a syntax-highlighted code snippet",
		Long: `Code highlights a source file and places it on a code background.

The language is detected from the file extension unless --language is set.
Pass "-" to read stdin; with no file the language's sample snippet is used.
Code backgrounds are gradient-soft, gradient-bold, mesh-gradient,
blob-duo and dot-grid; any screenshot preset id works too.`,
		Example: `  styler code main.go --theme dracula -p blob-duo
  pbpaste | styler code - --language python -f png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.codeInput(cmd.InOrStdin(), args, cf)
			if err != nil {
				return err
			}
			if f.preset == "" {
				f.preset = code.DefaultPreset
			}
			return c.runWith(cmd.Context(), &f, "Highlighting "+in.Language+"...", func(ctx context.Context, e *env, opts pipeline.Options) (*pipeline.Result, error) {
				return e.runner.ExecuteCode(ctx, in, opts)
			})
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&cf.theme, "theme", "", "highlighting theme (see `styler themes`)")
	cmd.Flags().StringVarP(&cf.language, "language", "l", "", "language (default: detected from the file name)")
	cmd.Flags().Float64Var(&cf.fontSize, "font-size", 0, "font size in pixels (default 14)")
	cmd.Flags().BoolVar(&cf.embedFont, "embed-font", false, "embed the monospace font in the SVG")
	return cmd
}

// codeInput reads the snippet named by args and resolves theme and language
// against the config defaults.
func (c *CLI) codeInput(stdin io.Reader, args []string, cf codeFlags) (pipeline.CodeInput, error) {
	in := pipeline.CodeInput{
		Theme:     cf.theme,
		Language:  cf.language,
		FontSize:  cf.fontSize,
		EmbedFont: cf.embedFont,
	}
	if in.Theme == "" {
		in.Theme = c.Config.Defaults.CodeTheme
	}

	var name string
	if len(args) == 1 {
		name = args[0]
		data, err := readCode(stdin, name)
		if err != nil {
			return in, err
		}
		in.Code = string(data)
	}

	if in.Language == "" {
		if lang, ok := code.DetectLanguage(name); ok && name != "-" {
			in.Language = lang.ID
		} else {
			in.Language = c.Config.Defaults.CodeLanguage
		}
	}
	if in.Language == "" {
		in.Language = code.DefaultLanguageID
	}
	return in, nil
}

func readCode(stdin io.Reader, name string) ([]byte, error) {
	var r io.Reader = stdin
	if name != "-" {
		if err := styerr.ValidatePath(name); err != nil {
			return nil, err
		}
		fh, err := os.Open(name)
		if os.IsNotExist(err) {
			return nil, styerr.New(styerr.ErrCodeFileNotFound, "file not found: %s", name)
		}
		if err != nil {
			return nil, styerr.Wrap(styerr.ErrCodeInvalidInput, err, "open %s", name)
		}
		defer fh.Close()
		r = fh
	}
	data, err := io.ReadAll(io.LimitReader(r, maxCodeSize+1))
	if err != nil {
		return nil, styerr.Wrap(styerr.ErrCodeInvalidInput, err, "read %s", name)
	}
	if len(data) > maxCodeSize {
		return nil, styerr.New(styerr.ErrCodeInvalidInput, "snippet is larger than %dKB", maxCodeSize>>10)
	}
	return data, nil
}
