package addrgen_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/memaddr/internal/addrgen"
)

func TestLoadConfigDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/addrgen.yaml", []byte(`
package: mm
types:
  - name: Frame
`), 0o644))

	config, err := addrgen.LoadConfig(fs, "/cfg/addrgen.yaml")
	require.NoError(t, err)
	require.Equal(t, &addrgen.Config{
		Package:        "mm",
		Output:         "addrs_gen.go",
		ContractImport: addrgen.DefaultContractImport,
		Types:          []addrgen.TypeConfig{{Name: "Frame"}},
	}, config)
	require.Equal(t, "/cfg/addrs_gen.go", config.OutputPath("/cfg/addrgen.yaml"))

	config.Output = "/abs/out.go"
	require.Equal(t, "/abs/out.go", config.OutputPath("/cfg/addrgen.yaml"))
}

func TestLoadConfigJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg/addrgen.json", []byte(`{
  "package": "mm",
  "contract_local": true,
  "types": [{"name": "Frame", "derive": ["json", "text"]}],
  "formatters": [{"name": "Frame", "format": "F:{}"}]
}`), 0o644))

	config, err := addrgen.LoadConfig(fs, "/cfg/addrgen.json")
	require.NoError(t, err)
	require.True(t, config.ContractLocal)
	require.Equal(t, []string{"json", "text"}, config.Types[0].Derive)
	require.Equal(t, []addrgen.FormatterConfig{{Name: "Frame", Format: "F:{}"}}, config.Formatters)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := addrgen.LoadConfig(afero.NewMemMapFs(), "/nope/addrgen.yaml")
	require.ErrorContains(t, err, "failed to read config from '/nope/addrgen.yaml'")
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	base := func() *addrgen.Config {
		return &addrgen.Config{
			Package:        "mm",
			Output:         "addrs_gen.go",
			ContractImport: addrgen.DefaultContractImport,
			Types:          []addrgen.TypeConfig{{Name: "Frame"}},
		}
	}

	testCases := map[string]struct {
		modify func(c *addrgen.Config)
		err    string
	}{
		"BadPackage": {
			modify: func(c *addrgen.Config) { c.Package = "not-a-package" },
			err:    `package name "not-a-package" is not a valid Go identifier`,
		},
		"NoOutput": {
			modify: func(c *addrgen.Config) { c.Output = "" },
			err:    "no output file configured",
		},
		"Empty": {
			modify: func(c *addrgen.Config) { c.Types = nil },
			err:    "config declares no types and no formatters",
		},
		"NoContractImport": {
			modify: func(c *addrgen.Config) { c.ContractImport = "" },
			err:    "contract_import must be set unless contract_local is true",
		},
		"BadTypeName": {
			modify: func(c *addrgen.Config) { c.Types[0].Name = "2Frame" },
			err:    `type name "2Frame" is not a valid Go identifier`,
		},
		"BlankTypeName": {
			modify: func(c *addrgen.Config) { c.Types[0].Name = "_" },
			err:    `type name "_" is not a valid Go identifier`,
		},
		"VisibilityMismatch": {
			modify: func(c *addrgen.Config) { c.Types[0].Visibility = "private" },
			err:    "type Frame is declared private but its name makes it public",
		},
		"UnknownVisibility": {
			modify: func(c *addrgen.Config) { c.Types[0].Visibility = "protected" },
			err:    `type Frame: unknown visibility "protected", expected public or private`,
		},
		"UnknownDerive": {
			modify: func(c *addrgen.Config) { c.Types[0].Derive = []string{"json", "yaml"} },
			err:    `type Frame: unknown derive "yaml", expected json or text`,
		},
		"DuplicateType": {
			modify: func(c *addrgen.Config) { c.Types = append(c.Types, addrgen.TypeConfig{Name: "Frame"}) },
			err:    "type Frame is declared more than once (types[0] and types[1])",
		},
		"DuplicateFormatter": {
			modify: func(c *addrgen.Config) {
				c.Formatters = []addrgen.FormatterConfig{{Name: "Frame", Format: "F:{}"}, {Name: "Frame", Format: "G:{}"}}
			},
			err: `type Frame already has formatter "F:{}"`,
		},
		"BadFormatterName": {
			modify: func(c *addrgen.Config) {
				c.Formatters = []addrgen.FormatterConfig{{Name: "", Format: "F:{}"}}
			},
			err: `formatter type name "" is not a valid Go identifier`,
		},
		"LayoutVarCollision": {
			modify: func(c *addrgen.Config) {
				c.Types = append(c.Types, addrgen.TypeConfig{Name: "frame"})
				c.Formatters = []addrgen.FormatterConfig{{Name: "Frame", Format: "F:{}"}, {Name: "frame", Format: "f:{}"}}
			},
			err: "layout of frame collides with layout of Frame: both are named frameLayout",
		},
		"ConstructorCollision": {
			modify: func(c *addrgen.Config) { c.Types = append(c.Types, addrgen.TypeConfig{Name: "NewFrame"}) },
			err:    "type NewFrame collides with constructor of Frame: both are named NewFrame",
		},
		"PrivateConstructorCollision": {
			modify: func(c *addrgen.Config) {
				c.Types = []addrgen.TypeConfig{{Name: "frame"}, {Name: "newFrame"}}
			},
			err: "type newFrame collides with constructor of frame: both are named newFrame",
		},
		"ContractImportCollision": {
			modify: func(c *addrgen.Config) { c.Types = []addrgen.TypeConfig{{Name: "addr"}} },
			err:    "type addr collides with contract package import: both are named addr",
		},
		"ContractLocalCollision": {
			modify: func(c *addrgen.Config) {
				c.ContractLocal = true
				c.Types = []addrgen.TypeConfig{{Name: "Compare"}}
			},
			err: "type Compare collides with contract Compare: both are named Compare",
		},
		"FmtImportCollision": {
			modify: func(c *addrgen.Config) {
				c.Types = []addrgen.TypeConfig{{Name: "fmt"}}
				c.Formatters = []addrgen.FormatterConfig{{Name: "fmt", Format: "F:{}"}}
			},
			err: "type fmt collides with fmt import: both are named fmt",
		},
		"BadContractPackage": {
			modify: func(c *addrgen.Config) { c.ContractImport = "gopkg.in/addr.v1" },
			err:    `contract package name "addr.v1" is not a valid Go identifier, set contract_package`,
		},
		"BadLayout": {
			modify: func(c *addrgen.Config) {
				c.Formatters = []addrgen.FormatterConfig{{Name: "Frame", Format: "F:"}}
			},
			err: `formatter for Frame: layout "F:" must contain exactly one {} slot, found 0`,
		},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			config := base()
			testCase.modify(config)

			_, err := newTestGenerator(afero.NewMemMapFs()).Generate(config)
			require.EqualError(t, err, "invalid addrgen config: "+testCase.err)
		})
	}
}

func TestParseEnums(t *testing.T) {
	visibility, err := addrgen.ParseVisibility("Public")
	require.NoError(t, err)
	require.Equal(t, addrgen.VisibilityPublic, visibility)
	require.Equal(t, "private", addrgen.VisibilityPrivate.String())

	derive, err := addrgen.ParseDerive("json")
	require.NoError(t, err)
	require.Equal(t, addrgen.DeriveJSON, derive)
	require.Equal(t, "text", addrgen.DeriveText.String())
}
