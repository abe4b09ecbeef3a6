// Copyright (c) 2026, The Ramify Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCmdStdout(t *testing.T) {
	cmd := newBuildCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"testdata/tree.toml"})

	require.NoError(t, cmd.Execute())

	var nj map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &nj))
	assert.Equal(t, "group", nj["nodeType"])
	assert.Equal(t, "scene", nj["name"])
}

func TestBuildCmdOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	cmd := newBuildCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/tree.toml", "-o", path})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"nodeType": "solid"`)
}

func TestBuildCmdMissingBlueprint(t *testing.T) {
	cmd := newBuildCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"testdata/nope.toml"})
	assert.Error(t, cmd.Execute())
}

func TestShowCmd(t *testing.T) {
	cmd := newShowCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"testdata/tree.toml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "tree/")
	assert.Contains(t, out.String(), `label="branch"`)
}
