// Package cmd implements the command-line interface for instasnap.
package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/instasnap-cli/instasnap/filesystem"
	"github.com/instasnap-cli/instasnap/inline"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringP("url", "u", "", "The post or reel URL to resolve")
	lo.Must0(getCmd.MarkFlagRequired("url"))

	getCmd.Flags().StringP("select", "s", "", "Criteria for selecting specific media from the resolved set")
	getCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	getCmd.Flags().BoolP("download", "D", false, "Retrieve the selected media files to local storage")
	getCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
}

// getCmd executes the application in non-interactive, scriptable inline mode.
var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Resolve a post or reel URL in non-interactive, scriptable inline mode",
	Long: `Initialize the application for automated execution and data extraction using inline mode.

Media selectors:
  all - every media item in the post
  first - first media item
  last - last media item
  images - image items only
  videos - video items only
  [number] - select media by index (starting from 0)`,

	Example: "  instasnap get -u https://www.instagram.com/p/DEMO123/ -j",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer
			err    error
		)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output != "" {
			writer, err = filesystem.API().Create(output)
			handleErr(err)
		} else {
			writer = os.Stdout
		}

		selectFlag := lo.Must(cmd.Flags().GetString("select"))
		picker := mo.None[inline.Picker]()
		if selectFlag != "" {
			fn, err := inline.ParsePicker(selectFlag)
			handleErr(err)
			picker = mo.Some(fn)
		}

		options := &inline.Options{
			Out:      writer,
			URL:      lo.Must(cmd.Flags().GetString("url")),
			Json:     lo.Must(cmd.Flags().GetBool("json")),
			Download: lo.Must(cmd.Flags().GetBool("download")),
			Picker:   picker,
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	getCmd.AddCommand(getSchemaCmd)
}

// getSchemaCmd generates JSON schemas for structured inline mode outputs.
var getSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "output", "result", "descriptor":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		schema := reflector.Reflect(&inline.Output{})

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
