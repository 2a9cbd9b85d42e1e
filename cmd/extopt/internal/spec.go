package internal

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"

	"github.com/goplus/extopt/formula"
	"github.com/goplus/extopt/internal/config"
	"github.com/goplus/extopt/pkgs/mod/module"
)

// specFlags holds the flags that describe a specification. Flags override
// the values read from the file.
type specFlags struct {
	file     string
	variants []string
	python   string
	deps     []string
	toolkit  string
	jobs     int
}

func (f *specFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "Specification file (.hcl, .yaml, .yml or .json)")
	fs.StringSliceVarP(&f.variants, "variant", "V", nil, "Variant to enable (+name or name) or disable (~name), repeatable")
	fs.StringVar(&f.python, "python", "", "Host interpreter version")
	fs.StringSliceVar(&f.deps, "dep", nil, "Resolved dependency as name@version, repeatable")
	fs.StringVar(&f.toolkit, "toolkit", "", "CUDA toolkit prefix")
	fs.IntVarP(&f.jobs, "jobs", "j", 0, "Job count for the build backend (default: from file, else number of CPUs)")
}

func (f *specFlags) build(ctx context.Context) (*formula.Spec, error) {
	var opts []formula.Option
	jobs := f.jobs

	if f.file != "" {
		file, err := config.Load(ctx, f.file)
		if err != nil {
			return nil, err
		}
		opts = append(opts, file.Options()...)
		if jobs == 0 {
			jobs = file.Jobs
		}
	}
	for _, arg := range f.variants {
		v, on, err := parseVariant(arg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, formula.WithVariant(v, on))
	}
	for _, arg := range f.deps {
		dep, err := module.Parse(arg)
		if err != nil {
			return nil, err
		}
		opts = append(opts, formula.WithDependency(dep.Path, dep.Version))
	}
	if f.python != "" {
		opts = append(opts, formula.WithHost(f.python))
	}
	if f.toolkit != "" {
		opts = append(opts, formula.WithToolkit(f.toolkit))
	}
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}
	opts = append(opts, formula.WithJobs(jobs))

	return formula.New(opts...), nil
}

// parseVariant parses "+name", "~name" or "name".
func parseVariant(arg string) (formula.Variant, bool, error) {
	on := true
	name := arg
	switch {
	case strings.HasPrefix(arg, "+"):
		name = arg[1:]
	case strings.HasPrefix(arg, "~"):
		name, on = arg[1:], false
	}
	if !formula.IsVariant(name) {
		return "", false, fmt.Errorf("unknown variant %q", name)
	}
	return formula.Variant(name), on, nil
}
