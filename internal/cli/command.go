package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/translate-service/internal/credentials"
	"github.com/guttosm/translate-service/internal/domain/dto"
	"github.com/guttosm/translate-service/internal/domain/model"
	"github.com/guttosm/translate-service/internal/service"
	"github.com/guttosm/translate-service/internal/upload"
)

// Version is set at build time.
var Version = "dev"

// ErrTokensDisabled is returned by the token command when no JWT secret is configured.
var ErrTokensDisabled = errors.New("JWT_SECRET_KEY is not set")

// Deps are the services the commands run against.
type Deps struct {
	Translator  service.Translator
	Credentials credentials.Store
	// Tokens is nil when no JWT secret is configured.
	Tokens service.TokenService
}

// DepsFunc builds Deps on first use so that --help works without configuration.
type DepsFunc func() (*Deps, error)

// Flags holds the values of persistent flags.
type Flags struct {
	JSON bool
	To   string
}

// CreateRootCommand creates the translatectl command tree.
func CreateRootCommand(load DepsFunc) *cobra.Command {
	flags := &Flags{}

	rootCmd := &cobra.Command{
		Use:   "translatectl",
		Short: "Translate text, documents and images from the command line",
		Long: `translatectl runs translation jobs against the Baidu general translation API.

Long inputs are split into chunks and translated one after another.

Examples:
  translatectl text "Hello world." --to zh
  translatectl doc report.docx notes.txt --to en
  translatectl image scan.png
  translatectl config set --app-id 2024... --secret-key ...`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.JSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().StringVar(&flags.To, "to", dto.DefaultTargetLang, "Target language")

	deps := lazy(load)
	rootCmd.AddCommand(
		newTextCommand(deps, flags),
		newDocCommand(deps, flags),
		newImageCommand(deps, flags),
		newConfigCommand(deps, flags),
		newLanguagesCommand(flags),
		newTokenCommand(deps, flags),
	)

	return rootCmd
}

func lazy(load DepsFunc) DepsFunc {
	var (
		deps *Deps
		err  error
		done bool
	)
	return func() (*Deps, error) {
		if !done {
			deps, err = load()
			done = true
		}
		return deps, err
	}
}

func newTextCommand(load DepsFunc, flags *Flags) *cobra.Command {
	var from, file string

	cmd := &cobra.Command{
		Use:   "text [text...]",
		Short: "Translate text given as arguments, a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			deps, err := load()
			if err != nil {
				return err
			}

			result, err := deps.Translator.TranslateText(cmd.Context(), model.TranslationRequest{
				Text:       text,
				SourceLang: from,
				TargetLang: flags.To,
			})
			if err != nil {
				return err
			}
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.TranslatedText)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", model.SourceAuto, "Source language")
	cmd.Flags().StringVarP(&file, "file", "f", "", `Read text from a file ("-" for stdin)`)
	return cmd
}

func readText(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case file == "-":
		data, err := io.ReadAll(stdin)
		return string(data), err
	case file != "":
		data, err := os.ReadFile(file)
		return string(data), err
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return "", errors.New("no text given: pass it as arguments or with --file")
	}
}

func newDocCommand(load DepsFunc, flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "doc FILE...",
		Short: "Translate .txt, .docx and .rtf documents in the given order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := load()
			if err != nil {
				return err
			}

			files := make([]upload.File, len(args))
			for i, path := range args {
				files[i] = upload.FromPath(path)
			}

			result, err := deps.Translator.TranslateDocuments(cmd.Context(), files, flags.To)
			if err != nil {
				return err
			}
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.TranslatedText)
			return err
		},
	}
}

func newImageCommand(load DepsFunc, flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "image FILE",
		Short: "Recognize and translate the text in an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := load()
			if err != nil {
				return err
			}

			result, err := deps.Translator.TranslateImage(cmd.Context(), upload.FromPath(args[0]), flags.To)
			if err != nil {
				return err
			}
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, result.OCRText); err != nil {
				return err
			}
			if result.Degraded {
				return nil
			}
			_, err = fmt.Fprintf(out, "\n%s\n", result.TranslatedText)
			return err
		},
	}
}

func newConfigCommand(load DepsFunc, flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or store the provider credentials",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the configured app id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}
			creds, err := deps.Credentials.Get()
			if err != nil {
				return err
			}
			resp := dto.ConfigResponse{AppID: creds.AppID, Configured: creds.IsComplete()}
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "appId: %s\nconfigured: %t\n", resp.AppID, resp.Configured)
			return err
		},
	}

	var req dto.ConfigRequest
	set := &cobra.Command{
		Use:   "set",
		Short: "Store the app id and secret key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}
			if err := deps.Credentials.Set(req.ToModel()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Configuration saved")
			return err
		},
	}
	set.Flags().StringVar(&req.AppID, "app-id", "", "Provider app id")
	set.Flags().StringVar(&req.SecretKey, "secret-key", "", "Provider secret key")
	_ = set.MarkFlagRequired("app-id")
	_ = set.MarkFlagRequired("secret-key")

	cmd.AddCommand(get, set)
	return cmd
}

func newLanguagesCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the accepted language codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			languages := model.Languages()
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), dto.LanguagesResponse{Languages: languages})
			}
			for _, l := range languages {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", l.Code, l.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTokenCommand(load DepsFunc, flags *Flags) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin JWT for POST /api/config and GET /api/jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}
			if deps.Tokens == nil {
				return ErrTokensDisabled
			}
			token, expires, err := deps.Tokens.IssueAdminToken(subject)
			if err != nil {
				return err
			}
			if flags.JSON {
				return printJSON(cmd.OutOrStdout(), map[string]any{"token": token, "expiresAt": expires})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "Token subject")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
