package godoc

import (
	"go/ast"
	"go/constant"
	"go/doc/comment"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"

	"github.com/nieomylnieja/oasgen/internal/pathutils"
)

// Doc holds the source documentation extracted for a single named type.
type Doc struct {
	Name    string
	Package string
	// Doc is the type's doc comment rendered as markdown.
	Doc string
	// Fields maps schema field names (the json tag name, falling back to
	// the Go field name) to their doc comments. Populated for structs.
	Fields map[string]string
	// Constants lists the string values of constants declared with this
	// type, in declaration order. Populated for non-struct named types.
	Constants []string
}

// Parser extracts type documentation from the module's source code.
type Parser struct {
	pkgs  map[string]*packages.Package
	cache map[string]Doc
}

// NewParser loads the module's packages with full syntax and type
// information. Loading is expensive; reuse the parser across types.
func NewParser() (*Parser, error) {
	root, err := pathutils.FindModuleRoot()
	if err != nil {
		return nil, err
	}
	conf := &packages.Config{
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedDeps |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(conf, root+"/...")
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}
	if err = firstPackageError(pkgs); err != nil {
		return nil, err
	}
	parser := &Parser{
		pkgs:  make(map[string]*packages.Package, len(pkgs)),
		cache: make(map[string]Doc),
	}
	parser.collect(pkgs)
	return parser, nil
}

// ParseType extracts documentation for a single named type.
func (p *Parser) ParseType(typ reflect.Type) (Doc, error) {
	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	name, pkgPath := typ.Name(), typ.PkgPath()
	if name == "" || pkgPath == "" {
		return Doc{}, errors.Errorf("%s is not a named package-level type", typ)
	}
	key := pkgPath + "." + name
	if doc, ok := p.cache[key]; ok {
		return doc, nil
	}
	pkg, ok := p.pkgs[pkgPath]
	if !ok {
		return Doc{}, errors.Errorf("package %s is not loaded for type %s", pkgPath, name)
	}
	decl, spec, err := findTypeDeclaration(pkg, name)
	if err != nil {
		return Doc{}, err
	}
	doc := Doc{Name: name, Package: pkgPath}
	docText := decl.Doc.Text()
	if docText == "" && spec.Doc != nil {
		// Grouped type declarations carry the comment on the spec.
		docText = spec.Doc.Text()
	}
	doc.Doc = renderMarkdown(pkg, docText)
	if structType, ok := spec.Type.(*ast.StructType); ok {
		doc.Fields = structFieldDocs(pkg, structType)
	} else {
		doc.Constants = constantValues(pkg, name)
	}
	p.cache[key] = doc
	return doc, nil
}

func (p *Parser) collect(pkgs []*packages.Package) {
	for _, pkg := range pkgs {
		if _, ok := p.pkgs[pkg.PkgPath]; ok {
			continue
		}
		p.pkgs[pkg.PkgPath] = pkg
		imports := make([]*packages.Package, 0, len(pkg.Imports))
		for _, imported := range pkg.Imports {
			imports = append(imports, imported)
		}
		p.collect(imports)
	}
}

func findTypeDeclaration(pkg *packages.Package, name string) (*ast.GenDecl, *ast.TypeSpec, error) {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				if typeSpec, ok := spec.(*ast.TypeSpec); ok && typeSpec.Name.Name == name {
					return genDecl, typeSpec, nil
				}
			}
		}
	}
	return nil, nil, errors.Errorf("could not find declaration of %s.%s", pkg.Name, name)
}

func structFieldDocs(pkg *packages.Package, structType *ast.StructType) map[string]string {
	fields := make(map[string]string, len(structType.Fields.List))
	for _, field := range structType.Fields.List {
		docText := field.Doc.Text()
		if docText == "" && field.Comment != nil {
			docText = field.Comment.Text()
		}
		if docText == "" {
			continue
		}
		rendered := renderMarkdown(pkg, docText)
		for _, ident := range field.Names {
			if !ident.IsExported() {
				continue
			}
			if name := schemaFieldName(ident.Name, field.Tag); name != "" {
				fields[name] = rendered
			}
		}
	}
	return fields
}

func schemaFieldName(goName string, tag *ast.BasicLit) string {
	if tag == nil {
		return goName
	}
	structTag := reflect.StructTag(strings.Trim(tag.Value, "`"))
	jsonName, _, _ := strings.Cut(structTag.Get("json"), ",")
	switch jsonName {
	case "":
		return goName
	case "-":
		return ""
	}
	return jsonName
}

// constantValues returns the string values of package-level constants
// declared with the named type, in declaration order.
func constantValues(pkg *packages.Package, typeName string) []string {
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return nil
	}
	var values []string
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			for _, spec := range genDecl.Specs {
				valueSpec, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				for _, ident := range valueSpec.Names {
					constObj, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
					if !ok || !types.Identical(constObj.Type(), obj.Type()) {
						continue
					}
					if constObj.Val().Kind() == constant.String {
						values = append(values, constant.StringVal(constObj.Val()))
					}
				}
			}
		}
	}
	return values
}

const docLinkBaseURL = "https://pkg.go.dev"

func renderMarkdown(pkg *packages.Package, text string) string {
	if text == "" {
		return ""
	}
	parser := &comment.Parser{
		LookupPackage: func(name string) (importPath string, ok bool) {
			for path, imported := range pkg.Imports {
				if imported.Name == name {
					return path, true
				}
			}
			return "", false
		},
		LookupSym: func(recv, name string) bool {
			if recv != "" {
				return false
			}
			return pkg.Types.Scope().Lookup(name) != nil
		},
	}
	printer := comment.Printer{
		DocLinkURL: func(link *comment.DocLink) string {
			if link.ImportPath == "" {
				link.ImportPath = pkg.PkgPath
			}
			return link.DefaultURL(docLinkBaseURL)
		},
	}
	return strings.TrimSpace(string(printer.Markdown(parser.Parse(text))))
}

func firstPackageError(pkgs []*packages.Package) (err error) {
	packages.Visit(pkgs, func(pkg *packages.Package) bool {
		for _, pkgErr := range pkg.Errors {
			err = errors.Wrapf(pkgErr, "package %s has reported an error", pkg.PkgPath)
			return false
		}
		if mod := pkg.Module; mod != nil && mod.Error != nil {
			err = errors.New(mod.Error.Err)
			return false
		}
		return true
	}, nil)
	return err
}
