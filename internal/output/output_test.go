package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/martinsuchenak/hcloud-inventory/internal/model"
)

func testInventory() *model.Inventory {
	return &model.Inventory{
		HostVars: map[string]model.HostVars{
			"web-1": {AnsibleHost: "203.0.113.10", HCloudServerType: "cx22", HCloudDataCenter: "fsn1-dc14", HCloudLocation: "fsn1"},
			"db-1":  {AnsibleHost: "203.0.113.20", HCloudServerType: "cpx31", HCloudDataCenter: "hel1-dc2", HCloudLocation: "hel1"},
		},
		Groups: []model.Group{
			{Name: "web", Hosts: []string{"web-1"}},
			{Name: "db", Hosts: []string{"db-1"}},
		},
		Ungrouped: []string{"web-1", "db-1"},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testInventory(), false))

	assert.JSONEq(t, `{
		"_meta": {"hostvars": {
			"web-1": {"ansible_host": "203.0.113.10", "hcloud_server_type": "cx22", "hcloud_data_center": "fsn1-dc14", "hcloud_location": "fsn1"},
			"db-1": {"ansible_host": "203.0.113.20", "hcloud_server_type": "cpx31", "hcloud_data_center": "hel1-dc2", "hcloud_location": "hel1"}
		}},
		"all": {"children": ["web", "db", "ungrouped"]},
		"ungrouped": {"hosts": ["web-1", "db-1"]},
		"web": {"hosts": ["web-1"]},
		"db": {"hosts": ["db-1"]}
	}`, buf.String())
	assert.NotContains(t, buf.String(), "\n  ")
}

func TestWriteJSONPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testInventory(), true))
	assert.Contains(t, buf.String(), "\n  \"_meta\"")
}

func TestWriteJSONEmptyInventory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &model.Inventory{}, false))

	assert.JSONEq(t, `{
		"_meta": {"hostvars": {}},
		"all": {"children": ["ungrouped"]},
		"ungrouped": {"hosts": []}
	}`, buf.String())
}

func TestWriteHost(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHost(&buf, testInventory(), "db-1", false))
	assert.JSONEq(t, `{"ansible_host": "203.0.113.20", "hcloud_server_type": "cpx31", "hcloud_data_center": "hel1-dc2", "hcloud_location": "hel1"}`, buf.String())

	buf.Reset()
	require.NoError(t, WriteHost(&buf, testInventory(), "unknown", false))
	assert.JSONEq(t, `{}`, buf.String())
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, testInventory()))

	var doc struct {
		All struct {
			Hosts    map[string]model.HostVars `yaml:"hosts"`
			Children map[string]struct {
				Hosts map[string]any `yaml:"hosts"`
			} `yaml:"children"`
		} `yaml:"all"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "203.0.113.10", doc.All.Hosts["web-1"].AnsibleHost)
	assert.Equal(t, "hel1", doc.All.Hosts["db-1"].HCloudLocation)
	require.Contains(t, doc.All.Children, "web")
	assert.Contains(t, doc.All.Children["web"].Hosts, "web-1")
	assert.Contains(t, doc.All.Children["db"].Hosts, "db-1")
	assert.Len(t, doc.All.Children["ungrouped"].Hosts, 2)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.json"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
}
