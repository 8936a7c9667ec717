package treespec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-frond/frond/pkg/component"
	"github.com/go-frond/frond/pkg/errors"
	comptest "github.com/go-frond/frond/pkg/testing"
)

const appManifest = `
key: app
props:
  title: Inbox
children:
  - key: header
  - key: body
    children:
      - key: row-1
      - key: row-2
`

func recordingFactory(key string, props component.Props) component.Component {
	return comptest.NewRecordingComponent(key, props)
}

func TestParse(t *testing.T) {
	spec, err := Parse([]byte(appManifest))
	require.NoError(t, err)

	assert.Equal(t, "app", spec.Key)
	assert.Equal(t, "Inbox", spec.Props["title"])
	require.Len(t, spec.Children, 2)
	assert.Equal(t, "header", spec.Children[0].Key)
	require.Len(t, spec.Children[1].Children, 2)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"empty manifest", ""},
		{"unknown field", "key: app\ncolor: red\n"},
		{"missing key", "props:\n  title: Inbox\n"},
		{"duplicate sibling keys", "key: app\nchildren:\n  - key: a\n  - key: a\n"},
		{"nested duplicate keys", "key: app\nchildren:\n  - key: a\n    children:\n      - key: b\n      - key: b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			require.Error(t, err)
			var specErr *errors.Error
			require.ErrorAs(t, err, &specErr)
			assert.Equal(t, errors.KindParsing, specErr.Kind)
			assert.False(t, specErr.Timestamp.IsZero())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte(appManifest), 0o644))

	spec, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "app", spec.Key)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	var specErr *errors.Error
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, "treespec.Load", specErr.Op)
	assert.False(t, specErr.Timestamp.IsZero())
}

func TestBuild(t *testing.T) {
	spec, err := Parse([]byte(appManifest))
	require.NoError(t, err)

	root, err := spec.Build(recordingFactory)
	require.NoError(t, err)

	assert.Equal(t, "app", root.Key())
	assert.Equal(t, "Inbox", root.Base().Props()["title"])
	comptest.RequireTree(t, root, "app\n  header\n  body\n    row-1\n    row-2\n")

	body, ok := root.Base().ChildByKey("body")
	require.True(t, ok)
	assert.Same(t, root, body.Base().Parent())
}

func TestBuild_NilFromFactory(t *testing.T) {
	spec, err := Parse([]byte(appManifest))
	require.NoError(t, err)

	_, err = spec.Build(func(key string, props component.Props) component.Component {
		if key == "row-2" {
			return nil
		}
		return comptest.NewRecordingComponent(key, props)
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "row-2")
}

func TestBuild_PanicFromFactory(t *testing.T) {
	spec, err := Parse([]byte(appManifest))
	require.NoError(t, err)

	_, err = spec.Build(func(key string, props component.Props) component.Component {
		if key == "body" {
			panic("factory exploded")
		}
		return comptest.NewRecordingComponent(key, props)
	})
	require.Error(t, err)

	var specErr *errors.Error
	require.ErrorAs(t, err, &specErr)
	assert.Equal(t, errors.KindPanic, specErr.Kind)
	assert.False(t, specErr.Timestamp.IsZero())

	var panicErr *errors.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, "factory exploded", panicErr.Value)
	assert.Contains(t, panicErr.Op, `"body"`)
	assert.NotEmpty(t, panicErr.StackTrace)
}

func TestEncode_RoundTrip(t *testing.T) {
	spec, err := Parse([]byte(appManifest))
	require.NoError(t, err)
	root, err := spec.Build(recordingFactory)
	require.NoError(t, err)

	data, err := Encode(root)
	require.NoError(t, err)

	again, err := Parse(data)
	require.NoError(t, err)
	rebuilt, err := again.Build(recordingFactory)
	require.NoError(t, err)
	assert.Equal(t, component.TreeString(root), component.TreeString(rebuilt))
	assert.Equal(t, "Inbox", rebuilt.Base().Props()["title"])
}
