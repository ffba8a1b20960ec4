package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gameforge/internal/imagen"
)

var (
	flagImageModel string
	flagImageOut   string
)

var imagegenCmd = &cobra.Command{
	Use:   "imagegen <prompt>",
	Short: "Generate a pixel-art game asset",
	Long: `Generate a pixel-art game asset from a text prompt through the
Hugging Face inference API. Requires HF_API_TOKEN.

The prompt is wrapped with the house style so assets match the
pixel-art look, and the image is written under the assets directory
named after the prompt.

Examples:
  forge imagegen "red dragon"
  forge imagegen "treasure chest" --out ./sprites
  forge imagegen "ice golem" --model some/other-model`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImagegen,
}

func init() {
	imagegenCmd.Flags().StringVar(&flagImageModel, "model", imagen.DefaultModel, "Hugging Face model to use")
	imagegenCmd.Flags().StringVar(&flagImageOut, "out", "assets", "Directory to write the image to")
}

func runImagegen(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	generator, err := imagen.NewGenerator("", flagImageModel)
	if err != nil {
		return err
	}
	generator.AssetsDir = flagImageOut

	var path string
	err = withSpinner("Generating image...", func() error {
		var genErr error
		path, genErr = generator.GenerateAndSave(cmd.Context(), prompt)
		return genErr
	})
	if err != nil {
		return err
	}

	fmt.Printf("Image saved to %s\n", path)
	return nil
}
