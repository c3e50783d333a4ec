package gfxpack

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fortresskit/gfxpack/internal/version"
	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/cobrax/topics"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/output"
	"github.com/fortresskit/gfxpack/pkg/output/styles"
	"github.com/fortresskit/gfxpack/pkg/types"
)

//go:embed topics
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "gfxpack",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			output.SetupColor(noColor, os.Stdout)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().String("lnp-dir", "", MsgFlagLNPDir)
	rootCmd.PersistentFlags().String("df-dir", "", MsgFlagDFDir)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})
	rootCmd.SetHelpCommandGroupID("misc")

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate + "\n")

	// Add all commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUpdateSavesCmd())
	rootCmd.AddCommand(newTilesetsCmd())
	rootCmd.AddCommand(newSimplifyCmd())
	rootCmd.AddCommand(newLegendsCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// packNamesCompletion provides shell completion for pack names
func packNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	app, err := newApp(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []string
	for _, pack := range app.catalog.ListPacks() {
		names = append(names, pack.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			packs := app.catalog.ListPacks()
			if len(packs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoPacks)
				return nil
			}

			data := pterm.TableData{{"PACK", "TITLE", "FONTS", "TOOLTIP"}}
			for _, pack := range packs {
				fonts := pack.Font
				if pack.GraphicsFont != "" {
					fonts += " / " + pack.GraphicsFont
				}
				data = append(data, []string{pack.Name, pack.DisplayName(), fonts, pack.Tooltip})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "current",
		Short:   MsgCurrentShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			pack, source := app.catalog.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
				styles.GetStyle("Pack").Render(pack),
				styles.GetStyle("Subtle").Render("("+source+")"))
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	var dfVersion string

	cmd := &cobra.Command{
		Use:               "validate <pack>",
		Short:             MsgValidateShort,
		Long:              MsgValidateLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			target := dfVersion
			if target == "" {
				target = app.ctx.Version
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, check := range app.validator.Checks(args[0], target) {
				verdict := styles.GetStyle("Success").Render("ok")
				if !check.OK {
					verdict = styles.GetStyle("Error").Render("failed")
					failed++
				}
				fmt.Fprintf(out, "  %-28s %s\n", check.Name, verdict)
			}
			if failed > 0 {
				return errors.Newf(errors.ErrPackInvalid,
					"%s failed %d validation checks for DF %s", args[0], failed, target)
			}
			fmt.Fprintln(out, styles.GetStyle("Success").Render(
				fmt.Sprintf("%s is valid for DF %s", args[0], target)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dfVersion, "df-version", "", MsgFlagDFVersion)
	return cmd
}

func newInstallCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:               "install <pack>",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			pack := args[0]
			log.Info().Str("pack", pack).Bool("dryRun", dryRun).
				Msg("Installing graphics pack")

			result := app.installer(dryRun).Install(cmd.Context(), pack)

			out := cmd.OutOrStdout()
			switch result {
			case types.InstallSuccess:
				if dryRun {
					fmt.Fprintln(out, MsgDryRunNotice)
				}
				fmt.Fprintln(out, styles.GetStyle("Success").Render(
					fmt.Sprintf(MsgInstallSuccess, pack)))
				return nil
			case types.InstallDeclined:
				fmt.Fprintln(out, styles.GetStyle("Warning").Render(
					fmt.Sprintf(MsgInstallDeclined, pack)))
			case types.InstallMissingBaseline:
				fmt.Fprintln(out, styles.GetStyle("Error").Render(MsgInstallNoBaseline))
			default:
				fmt.Fprintln(out, styles.GetStyle("Error").Render(
					fmt.Sprintf(MsgInstallFailed, pack)))
			}
			return &ExitError{
				Code: installExitCode(result),
				Err:  fmt.Errorf("install %s: %s", pack, result),
			}
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newUpdateSavesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "update-saves",
		Short:   MsgUpdateSavesShort,
		Long:    MsgUpdateSavesLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			updated, skipped := app.batchDriver().UpdateSavegames()
			fmt.Fprintf(cmd.OutOrStdout(), MsgUpdateSavesFormat, updated, skipped)
			return nil
		},
	}
}

func newTilesetsCmd() *cobra.Command {
	var install string

	cmd := &cobra.Command{
		Use:     "tilesets",
		Short:   MsgTilesetsShort,
		Long:    MsgTilesetsLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			ts := app.tilesets(assets.NewExecutor(false))
			if install != "" {
				font, graphicsFont, _ := strings.Cut(install, ",")
				if err := ts.Install(font, graphicsFont); err != nil {
					return err
				}
			}

			names, err := ts.Read(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.GetStyle("Header").Render("Tilesets"))
			font, graphicsFont := ts.Current()
			for _, name := range names {
				marker := "  "
				if name == font || name == graphicsFont {
					marker = "* "
				}
				fmt.Fprintln(out, marker+name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&install, "install", "i", "", MsgFlagTilesetInstall)
	return cmd
}

func newSimplifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "simplify [pack]",
		Short:             MsgSimplifyShort,
		GroupID:           "core",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: packNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			var removed int
			if len(args) == 1 {
				removed, err = app.simplifier().SimplifyPack(args[0])
			} else {
				removed, err = app.simplifier().SimplifyAll()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgSimplifyFormat, removed)
			return nil
		},
	}
}

func newLegendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "legends",
		Short:   MsgLegendsShort,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd)
			if err != nil {
				return err
			}

			processed, err := app.legends().ProcessAll()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgLegendsFormat, processed)
			return nil
		},
	}
}

func newDocsCmd() *cobra.Command {
	// The topics ship inside the binary, so a scan failure here is a
	// packaging bug, not a runtime condition.
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	manager, err := topics.NewWithOptions(sub, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		panic(err)
	}

	cmd := manager.NewCommand("docs", MsgDocsShort)
	cmd.GroupID = "misc"
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gfxpack version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
