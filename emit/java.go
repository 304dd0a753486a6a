package emit

import (
	"fmt"
	"strings"
)

// GeneratedHeader is the first line of every generated file.
const GeneratedHeader = "// This file is autogenerated. Please do not edit it."

// JavaOptions configures the Java wrapper generator.
type JavaOptions struct {
	PackageName     string
	LayoutInterface string
	ResourceClass   string

	// EnsureNonNull is called on the inflated root. A qualified name is
	// statically imported.
	EnsureNonNull string
}

// JavaGenerator renders Android layout wrappers as Java classes.
type JavaGenerator struct {
	opts JavaOptions
}

// NewJavaGenerator creates a Java generator.
func NewJavaGenerator(opts JavaOptions) *JavaGenerator {
	return &JavaGenerator{opts: opts}
}

func (g *JavaGenerator) Language() string      { return "java" }
func (g *JavaGenerator) FileExtension() string { return "java" }

// TypeName returns Pascal(layout) + "Layout".
func (g *JavaGenerator) TypeName(layout string) string {
	return ToPascalCase(layout) + "Layout"
}

// GenerateFile renders the wrapper class of l.
func (g *JavaGenerator) GenerateFile(l *Layout) string {
	var sb strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}

	class := g.TypeName(l.Name)
	root := l.RootType
	ensure := g.opts.EnsureNonNull
	ensureName := ensure
	if i := strings.LastIndexByte(ensure, '.'); i >= 0 {
		ensureName = ensure[i+1:]
	}

	w("%s", GeneratedHeader)
	w("package %s;", g.opts.PackageName)
	w("")
	w("import %s;", g.opts.LayoutInterface)
	w("import %s;", g.opts.ResourceClass)
	w("")
	w("import android.content.Context;")
	w("import android.view.ContextThemeWrapper;")
	w("import android.view.LayoutInflater;")
	w("import android.view.ViewGroup;")
	w("")
	w("import androidx.annotation.NonNull;")
	w("import androidx.annotation.StyleRes;")
	if ensureName != ensure {
		w("")
		w("import static %s;", ensure)
	}
	w("")

	implements := ""
	if len(l.Interfaces) > 0 {
		implements = " implements " + strings.Join(l.Interfaces, ", ")
	}
	w("public final class %s%s {", class, implements)
	w("")

	w("    @NonNull")
	w("    private final %s mRoot;", root)
	for _, id := range l.IDs {
		w("    private %s %s;", l.Types[id], id)
	}

	w("")
	w("    private %s(@NonNull %s root) {", class, root)
	w("        %s(root);", ensureName)
	w("        mRoot = root;")
	w("    }")

	w("")
	w("    @NonNull")
	w("    public %s view() {", root)
	w("        return mRoot;")
	w("    }")

	for _, id := range l.IDs {
		// An owner hidden by a conflict has no accessor
		scope := "mRoot"
		if owner, ok := l.Wrappers[id]; ok {
			if _, exposed := l.Types[owner]; exposed {
				scope = owner + "()"
			}
		}
		w("")
		w("    @NonNull")
		w("    public %s %s() {", l.Types[id], id)
		w("        if (%s == null) {", id)
		w("            %s = %s.findViewById(R.id.%s);", id, scope, id)
		w("        }")
		w("")
		w("        return %s;", id)
		w("    }")
	}

	w("")
	w("    @NonNull")
	w("    public static %s attachWithLayoutInflater(@NonNull LayoutInflater inflater, @NonNull ViewGroup parent) {", class)
	w("        final int position = parent.getChildCount();")
	w("        inflater.inflate(R.layout.%s, parent, true);", l.Name)
	w("        return new %s((%s) parent.getChildAt(position));", class, root)
	w("    }")
	w("")
	w("    @NonNull")
	w("    public static %s createWithLayoutInflater(@NonNull LayoutInflater inflater, ViewGroup parent) {", class)
	w("        return new %s((%s) inflater.inflate(R.layout.%s, parent, false));", class, root, l.Name)
	w("    }")
	w("")
	w("    @NonNull")
	w("    public static %s create(@NonNull ViewGroup parent) {", class)
	w("        return createWithLayoutInflater(LayoutInflater.from(parent.getContext()), parent);")
	w("    }")
	w("")
	w("    @NonNull")
	w("    public static %s createWithTheme(@StyleRes int styleResId, @NonNull ViewGroup parent) {", class)
	w("        final Context context = parent.getContext();")
	w("        final Context themedContext = new ContextThemeWrapper(context, styleResId);")
	w("        return createWithLayoutInflater(LayoutInflater.from(themedContext), parent);")
	w("    }")
	w("}")

	return sb.String()
}
