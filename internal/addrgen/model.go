package addrgen

import (
	"go/token"
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/memaddr/addr"
)

type typeModel struct {
	Name        string
	Constructor string
	Doc         []string
	JSON        bool
	Text        bool
}

type formatterModel struct {
	Name     string
	Var      string
	Template string
	Q        string
}

type fileModel struct {
	Package        string
	ContractImport string
	// Q qualifies references to the contract package: empty when generating into it
	Q          string
	Types      []typeModel
	Formatters []formatterModel
}

func (m *fileModel) Imports() []string {
	var imports []string
	if len(m.Formatters) > 0 {
		imports = append(imports, "fmt")
	}
	if m.Q != "" {
		imports = append(imports, m.ContractImport)
	}
	return imports
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

var majorVersionSuffix = regexp.MustCompile(`^v[0-9]+$`)

// contractPackageName returns the identifier generated code uses to refer to the
// contract package imported from importPath.
func contractPackageName(importPath string) string {
	name := path.Base(importPath)
	if majorVersionSuffix.MatchString(name) && path.Dir(importPath) != "." {
		name = path.Base(path.Dir(importPath))
	}
	return name
}

// contractIdentifiers are the contract package members generated code refers to
// unqualified when the file is generated into the contract package itself.
var contractIdentifiers = []string{
	"MemoryAddr", "MustLayout",
	"AlignDown", "AlignUp", "CheckedAlignUp", "AlignOffset", "IsAligned",
	"AlignDown4K", "AlignUp4K", "AlignOffset4K", "IsAligned4K",
	"Offset", "WrappingOffset", "OffsetFrom",
	"Add", "WrappingAdd", "OverflowingAdd", "Sub", "WrappingSub", "OverflowingSub",
	"Plus", "Minus", "AddAssign", "SubAssign", "Distance", "Compare",
	"MarshalJSON", "UnmarshalJSON", "MarshalText", "UnmarshalText",
}

// identifierSet tracks the top-level identifiers a generated file declares or refers
// to, so that two of them can never share a name.
type identifierSet struct {
	owners *swiss.Map[string, string]
}

func newIdentifierSet(capacity int) identifierSet {
	return identifierSet{owners: swiss.NewMap[string, string](uint32(capacity))}
}

func (s identifierSet) claim(name, owner string) error {
	if previous, ok := s.owners.Get(name); ok {
		return errors.Newf("%s collides with %s: both are named %s", owner, previous, name)
	}
	s.owners.Put(name, owner)
	return nil
}

func buildTypeModel(config TypeConfig) (typeModel, error) {
	if !token.IsIdentifier(config.Name) || config.Name == "_" {
		return typeModel{}, errors.Newf("type name %q is not a valid Go identifier", config.Name)
	}

	visibility := VisibilityPrivate
	if token.IsExported(config.Name) {
		visibility = VisibilityPublic
	}
	if config.Visibility != "" {
		requested, err := ParseVisibility(config.Visibility)
		if err != nil {
			return typeModel{}, errors.Wrapf(err, "type %s", config.Name)
		}
		if requested != visibility {
			return typeModel{}, errors.Newf("type %s is declared %s but its name makes it %s", config.Name, requested, visibility)
		}
	}

	model := typeModel{Name: config.Name}
	if visibility == VisibilityPublic {
		model.Constructor = "New" + config.Name
	} else {
		model.Constructor = "new" + upperFirst(config.Name)
	}

	doc := strings.TrimSpace(config.Doc)
	if doc == "" {
		doc = config.Name + " is an address kind generated by addrgen."
	}
	model.Doc = strings.Split(doc, "\n")

	for _, name := range config.Derive {
		derive, err := ParseDerive(name)
		if err != nil {
			return typeModel{}, errors.Wrapf(err, "type %s", config.Name)
		}
		switch derive {
		case DeriveJSON:
			model.JSON = true
		case DeriveText:
			model.Text = true
		}
	}

	return model, nil
}

func buildModel(config *Config) (*fileModel, error) {
	if !token.IsIdentifier(config.Package) {
		return nil, errors.Newf("package name %q is not a valid Go identifier", config.Package)
	}
	if config.Output == "" {
		return nil, errors.New("no output file configured")
	}
	if len(config.Types) == 0 && len(config.Formatters) == 0 {
		return nil, errors.New("config declares no types and no formatters")
	}

	model := &fileModel{
		Package:        config.Package,
		ContractImport: config.ContractImport,
	}
	if !config.ContractLocal {
		if config.ContractImport == "" {
			return nil, errors.New("contract_import must be set unless contract_local is true")
		}
		packageName := config.ContractPackage
		if packageName == "" {
			packageName = contractPackageName(config.ContractImport)
		}
		if !token.IsIdentifier(packageName) || packageName == "_" {
			return nil, errors.Newf("contract package name %q is not a valid Go identifier, set contract_package", packageName)
		}
		model.Q = packageName + "."
	}

	identifiers := newIdentifierSet(len(contractIdentifiers) + 2*len(config.Types) + len(config.Formatters) + 2)
	if config.ContractLocal {
		for _, name := range contractIdentifiers {
			_ = identifiers.claim(name, "contract "+name)
		}
	} else {
		_ = identifiers.claim(strings.TrimSuffix(model.Q, "."), "contract package import")
	}
	if len(config.Formatters) > 0 {
		_ = identifiers.claim("fmt", "fmt import")
	}

	declared := swiss.NewMap[string, int](uint32(len(config.Types)))
	for i, typeConfig := range config.Types {
		if first, ok := declared.Get(typeConfig.Name); ok {
			return nil, errors.Newf("type %s is declared more than once (types[%d] and types[%d])", typeConfig.Name, first, i)
		}
		declared.Put(typeConfig.Name, i)

		typeModel, err := buildTypeModel(typeConfig)
		if err != nil {
			return nil, err
		}
		if err := identifiers.claim(typeModel.Name, "type "+typeModel.Name); err != nil {
			return nil, err
		}
		if err := identifiers.claim(typeModel.Constructor, "constructor of "+typeModel.Name); err != nil {
			return nil, err
		}
		model.Types = append(model.Types, typeModel)
	}

	formatted := swiss.NewMap[string, string](uint32(len(config.Formatters)))
	for _, formatterConfig := range config.Formatters {
		if !token.IsIdentifier(formatterConfig.Name) {
			return nil, errors.Newf("formatter type name %q is not a valid Go identifier", formatterConfig.Name)
		}
		if previous, ok := formatted.Get(formatterConfig.Name); ok {
			return nil, errors.Newf("type %s already has formatter %q", formatterConfig.Name, previous)
		}
		formatted.Put(formatterConfig.Name, formatterConfig.Format)

		layout, err := addr.ParseLayout(formatterConfig.Format)
		if err != nil {
			return nil, errors.Wrapf(err, "formatter for %s", formatterConfig.Name)
		}

		layoutVar := lowerFirst(formatterConfig.Name) + "Layout"
		if err := identifiers.claim(layoutVar, "layout of "+formatterConfig.Name); err != nil {
			return nil, err
		}

		model.Formatters = append(model.Formatters, formatterModel{
			Name:     formatterConfig.Name,
			Var:      layoutVar,
			Template: layout.Template(),
			Q:        model.Q,
		})
	}

	return model, nil
}
