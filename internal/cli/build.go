// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ramify3d/ramify/blueprint"
	"github.com/ramify3d/ramify/scene"
)

// buildScene loads a blueprint file and renders it into a fresh scene.
func buildScene(path string) (*scene.Scene, error) {
	fig, err := blueprint.Load(path)
	if err != nil {
		return nil, err
	}
	sc := scene.NewScene("scene")
	if err := fig.Build(&sc.Group); err != nil {
		return nil, err
	}
	return sc, nil
}

func newBuildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build <blueprint>",
		Short: "Build a blueprint file into scene JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, err := buildScene(args[0])
			if err != nil {
				return err
			}
			logger.Debug("built scene", "blueprint", args[0], "solids", len(sc.Solids()))

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := scene.WriteJSON(w, sc); err != nil {
				return err
			}
			if output != "" {
				logger.Info("wrote scene", "path", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write JSON to this file instead of stdout")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <blueprint>",
		Short: "Print the scene outline for a blueprint file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := buildScene(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), sc.String())
			return nil
		},
	}
}
