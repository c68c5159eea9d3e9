// Package main provides the Flashlight CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flashlight-ml/flashlight/backend/cpu"
	"github.com/flashlight-ml/flashlight/backend/webgpu"
	"github.com/flashlight-ml/flashlight/tensor"
)

const version = "v0.1.0-dev"

func main() {
	root := &cobra.Command{
		Use:           "flashlight",
		Short:         "Flat float32 tensor kernels for CPU and WebGPU",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(versionCmd(), infoCmd(), reluCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flashlight %s\n", version)
		},
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show available compute backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("CPU: available")
			if !webgpu.IsAvailable() {
				fmt.Println("WebGPU: not available")
				return nil
			}
			gpu, err := webgpu.New()
			if err != nil {
				return err
			}
			defer gpu.Release()
			fmt.Printf("WebGPU: %s\n", gpu.Name())
			return nil
		},
	}
}

func reluCmd() *cobra.Command {
	var useGPU bool

	cmd := &cobra.Command{
		Use:   "relu [values...]",
		Short: "Apply ReLU (max(x, 0)) element-wise to the given values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float32, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 32)
				if err != nil {
					return fmt.Errorf("invalid value %q: %w", arg, err)
				}
				values[i] = float32(v)
			}

			input, err := tensor.FromData(values, tensor.Shape{len(values)})
			if err != nil {
				return err
			}

			var backend tensor.Backend
			if useGPU {
				gpu, err := webgpu.New()
				if err != nil {
					return err
				}
				defer gpu.Release()
				backend = gpu
			} else {
				backend = cpu.New()
			}

			output := backend.ReLU(input)

			parts := make([]string, output.NumElements())
			for i, v := range output.Data() {
				parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32)
			}
			fmt.Println(strings.Join(parts, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&useGPU, "gpu", false, "run on the WebGPU backend")

	return cmd
}
