package keyword

import (
	"github.com/xolan/rfext/internal/service"
)

// RegisterBuiltins registers the rfext keywords backed by svc.
func RegisterBuiltins(lib *Library, svc *service.Services) error {
	builtins := []Keyword{
		{
			Name: "pretty_print",
			Doc: "Logs the content of data at info level, resolving composite values " +
				"into one line per element with type and counters. Returns the lines.",
			Args: []ArgSpec{
				{Name: "data", Doc: "Value to print."},
			},
			Run: func(args Args) (Outcome, error) {
				data, _ := args.Value("data")
				lines := svc.Print.PrettyPrint(data)
				return Outcome{Success: true, Lines: lines, Value: lines}, nil
			},
		},
		{
			Name: "normalize_path",
			Doc: "Normalizes a local path, network share or internet address. " +
				"Omitted options fall back to the [path] section of the config.",
			Args: []ArgSpec{
				{Name: "path", Required: true, Doc: "Path to normalize."},
				{Name: "win", Default: false, Doc: "Use backslash separators."},
				{Name: "reference_path", Doc: "Absolute path joined in front of a relative path."},
				{Name: "consider_blanks", Default: false, Doc: "Quote the result if it contains blanks."},
				{Name: "expand_env_vars", Default: true, Doc: "Resolve environment variables."},
				{Name: "mask", Default: true, Doc: "Double backslashes (with win only)."},
			},
			Run: func(args Args) (Outcome, error) {
				p, err := args.String("path", "")
				if err != nil {
					return Outcome{}, err
				}
				var o service.PathOverrides
				if o.Windows, err = args.OptionalBool("win"); err != nil {
					return Outcome{}, err
				}
				if o.ReferencePath, err = args.OptionalString("reference_path"); err != nil {
					return Outcome{}, err
				}
				if o.ConsiderBlanks, err = args.OptionalBool("consider_blanks"); err != nil {
					return Outcome{}, err
				}
				if o.ExpandEnvVars, err = args.OptionalBool("expand_env_vars"); err != nil {
					return Outcome{}, err
				}
				if o.Mask, err = args.OptionalBool("mask"); err != nil {
					return Outcome{}, err
				}
				out := svc.Path.Normalize(p, o)
				return Outcome{Success: true, Message: out, Value: out}, nil
			},
		},
		{
			Name: "create_folder",
			Doc: "Creates a folder, retrying on failure. An existing folder is kept " +
				"unless overwrite is set.",
			Args: []ArgSpec{
				{Name: "path", Required: true, Doc: "Folder to create."},
				{Name: "overwrite", Default: false, Doc: "Delete an existing folder first."},
				{Name: "recursive", Default: false, Doc: "Create missing parent folders."},
			},
			Run: func(args Args) (Outcome, error) {
				p, err := args.String("path", "")
				if err != nil {
					return Outcome{}, err
				}
				overwrite, err := args.Bool("overwrite", false)
				if err != nil {
					return Outcome{}, err
				}
				recursive, err := args.Bool("recursive", false)
				if err != nil {
					return Outcome{}, err
				}
				res, err := svc.Folder.Create(p, overwrite, recursive)
				if err != nil {
					return Outcome{}, err
				}
				return Outcome{Success: res.Success, Message: res.Message, Value: res.Success}, nil
			},
		},
		{
			Name: "delete_folder",
			Doc: "Deletes a folder and its content, retrying on failure. With " +
				"confirm_delete a missing folder is reported as a failure.",
			Args: []ArgSpec{
				{Name: "path", Required: true, Doc: "Folder to delete."},
				{Name: "confirm_delete", Default: true, Doc: "Fail when the folder does not exist."},
			},
			Run: func(args Args) (Outcome, error) {
				p, err := args.String("path", "")
				if err != nil {
					return Outcome{}, err
				}
				confirm, err := args.Bool("confirm_delete", true)
				if err != nil {
					return Outcome{}, err
				}
				res, err := svc.Folder.Delete(p, confirm)
				if err != nil {
					return Outcome{}, err
				}
				return Outcome{Success: res.Success, Message: res.Message, Value: res.Success}, nil
			},
		},
	}

	for _, kw := range builtins {
		if err := lib.Register(kw); err != nil {
			return err
		}
	}
	return nil
}

// NewDefaultLibrary returns a Library with the builtin keywords registered.
func NewDefaultLibrary(svc *service.Services) (*Library, error) {
	lib := NewLibrary()
	if err := RegisterBuiltins(lib, svc); err != nil {
		return nil, err
	}
	return lib, nil
}
