// Package cmd implements the command-line interface for instasnap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/instasnap-cli/instasnap/color"
	"github.com/instasnap-cli/instasnap/constant"
	"github.com/instasnap-cli/instasnap/download"
	"github.com/instasnap-cli/instasnap/history"
	"github.com/instasnap-cli/instasnap/icon"
	"github.com/instasnap-cli/instasnap/instagram"
	"github.com/instasnap-cli/instasnap/key"
	"github.com/instasnap-cli/instasnap/log"
	"github.com/instasnap-cli/instasnap/media"
	"github.com/instasnap-cli/instasnap/style"
	"github.com/instasnap-cli/instasnap/tui"
	"github.com/instasnap-cli/instasnap/util"
	"github.com/instasnap-cli/instasnap/version"
	"github.com/instasnap-cli/instasnap/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Persist completed downloads to the localized download history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.PersistentFlags().StringP("downloads", "d", "", "Destination directory for downloaded files")
	lo.Must0(viper.BindPFlag(key.DownloadsPath, rootCmd.PersistentFlags().Lookup("downloads")))

	rootCmd.PersistentFlags().IntP("concurrency", "C", 0, "Maximum number of parallel downloads")
	lo.Must0(viper.BindPFlag(key.DownloadsConcurrency, rootCmd.PersistentFlags().Lookup("concurrency")))

	rootCmd.Flags().BoolP("all", "a", false, "Download every media item without prompting for selection")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the instasnap application.
var rootCmd = &cobra.Command{
	Use:   constant.Instasnap + " [url]",
	Short: "A minimalist command-line interface for Instagram media retrieval",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - A minimalist command-line interface for Instagram media retrieval"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		var url string
		if len(args) > 0 {
			url = args[0]
		} else {
			prompt := survey.Input{
				Message: "Post or reel URL:",
				Suggest: history.SuggestURLs,
			}
			handleErr(survey.AskOne(&prompt, &url, survey.WithValidator(survey.Required)))
		}

		handleErr(interactiveDownload(url, lo.Must(cmd.Flags().GetBool("all"))))
	},
}

// interactiveDownload resolves a URL, prompts for media selection and retrieves
// the chosen files with a live progress view.
func interactiveDownload(url string, all bool) error {
	erase := util.PrintErasable(fmt.Sprintf("%s Resolving URL...", icon.Get(icon.Progress)))
	result := instagram.Resolve(context.Background(), instagram.NewWebProvider(), url)
	erase()

	if !result.Ok() {
		return fmt.Errorf("%s", result.Message)
	}

	fmt.Printf("%s %s\n", icon.Get(icon.Success), result.Message)

	descriptors := result.Data
	if len(descriptors) == 0 {
		return fmt.Errorf("no media found for %s", url)
	}

	if !all && len(descriptors) > 1 {
		labels := lo.Map(descriptors, func(d *media.Descriptor, i int) string {
			return fmt.Sprintf("%s %d: %s (%dx%d)", icon.ForKind(string(d.Kind)), i+1, d.Kind, d.Width, d.Height)
		})

		var selected []int
		prompt := survey.MultiSelect{
			Message: "Select media to download:",
			Options: labels,
			Default: lo.Range(len(labels)),
		}
		if err := survey.AskOne(&prompt, &selected); err != nil {
			return err
		}

		if len(selected) == 0 {
			return nil
		}

		descriptors = lo.Map(selected, func(i int, _ int) *media.Descriptor {
			return result.Data[i]
		})
	}

	timestamp := time.Now().Unix()
	files := make([]media.SelectedFile, len(descriptors))
	for i, d := range descriptors {
		files[i] = media.NewSelectedFile(d, result.Username, timestamp, i)
	}

	results, err := tui.Run(files, &download.Options{})
	if err != nil {
		return err
	}

	var paths []string
	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, r.Message())
			continue
		}
		paths = append(paths, r.Path)
	}

	if len(paths) > 0 {
		fmt.Printf("%s Saved %s\n", icon.Get(icon.Download), util.Quantify(len(paths), "file", "files"))

		if shortcode, err := instagram.ExtractShortcode(url); err == nil {
			if err := history.Save(&history.SavedDownload{
				Shortcode: shortcode,
				URL:       url,
				Username:  result.Username,
				Files:     paths,
			}); err != nil {
				log.Warnf("failed to save history: %v", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to download %s", util.Quantify(failed, "file", "files"))
	}

	return nil
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
