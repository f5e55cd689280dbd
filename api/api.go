// Package api ties the builder, analyzer, and translator together and
// writes the generated Lingua Franca files to disk.
package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/sarmadiali98/ReLico-sub000/analyzer"
	"github.com/sarmadiali98/ReLico-sub000/builder"
	"github.com/sarmadiali98/ReLico-sub000/config"
	"github.com/sarmadiali98/ReLico-sub000/lf"
	"github.com/sarmadiali98/ReLico-sub000/rebeca"
	"github.com/sarmadiali98/ReLico-sub000/translator"
)

// Result indicates if the Run function was successful or how it failed.
type Result int

const (
	// RunSuccessful indicates that the Run function completed successfully
	// without warnings.
	RunSuccessful Result = iota
	// RunSuccessfulButWithWarnings indicates that the Run function completed
	// successfully but generated warnings.
	RunSuccessfulButWithWarnings
	// RunFailedWithBuilder indicates that the Run function failed while the
	// builder was working.
	RunFailedWithBuilder
	// RunFailedWithTranslator indicates that the Run function failed while
	// the translator was working.
	RunFailedWithTranslator
	// RunFailedWritingOutputFiles indicates that the Run function failed
	// writing the generated Lingua Franca files to disk.
	RunFailedWritingOutputFiles
)

// Translate builds the model in src and translates it to Lingua Franca
// source text. The returned warnings never suppress output; the error
// is non-nil only when the model could not be built or translated at
// all, and the text is then empty.
func Translate(src []byte, name string, cfg *config.Config) (string, []error, error) {
	model, warnings := builder.BuildModel(src, name)
	if model == nil {
		return "", nil, warnings[0]
	}
	program, errs, err := translateModel(model, cfg)
	warnings = append(warnings, errs...)
	if err != nil {
		return "", warnings, err
	}
	return program.AsLF(), warnings, nil
}

// translateModel runs the translator and converts panics caused by
// degenerate models into errors, so a single bad model cannot take down
// a batch run or a scratchpad session.
func translateModel(model *rebeca.Model, cfg *config.Config) (program *lf.Program, warnings []error, err error) {
	defer func() {
		if r := recover(); r != nil {
			program = nil
			err = fmt.Errorf("translation of %s failed: %v", model.Name(), r)
		}
	}()
	translatorConfig := translator.Config{Target: cfg.Target, TimeUnit: cfg.TimeUnit}
	program, warnings = translator.TranslateModel(model, &translatorConfig)
	return program, warnings, nil
}

// Run translates the model file at the given path and returns whether
// it was successful or failed. Warnings print to stderr. The output
// file goes next to the source file unless the config names an output
// directory.
func Run(path string, cfg *config.Config) Result {
	warnings := false

	// Builder
	model, errs := builder.BuildFile(path)
	warnings = warnings || len(errs) > 0
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	if model == nil {
		return RunFailedWithBuilder
	}

	// Translator
	program, errs, err := translateModel(model, cfg)
	warnings = warnings || len(errs) > 0
	for _, warning := range errs {
		fmt.Fprintln(os.Stderr, warning)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return RunFailedWithTranslator
	}

	destDir := filepath.Dir(path)
	if cfg.OutDir != "" {
		destDir = cfg.OutDir
		if err := os.MkdirAll(destDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "could not create output directory: %v\n", err)
			return RunFailedWritingOutputFiles
		}
	}
	base := filepath.Base(path)
	outName := filepath.Join(destDir, strings.TrimSuffix(base, filepath.Ext(base)))

	if cfg.Debug {
		outputCallGraph(model, outName)
	}

	outPath := outName + cfg.OutExt
	if err := os.WriteFile(outPath, []byte(program.AsLF()), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "could not write %s file: %v\n", cfg.OutExt, err)
		return RunFailedWritingOutputFiles
	}

	if warnings {
		return RunSuccessfulButWithWarnings
	}
	return RunSuccessful
}

// RunDir translates every model file under srcDir, walking nested
// directories in lexical order. Entries starting with a dot or an
// underscore are skipped, as are files matching the ignore file in
// srcDir. Per file failures are reported and counted but never stop the
// batch; the result is a failure only when srcDir cannot be read or the
// output directory cannot be created.
func RunDir(srcDir string, cfg *config.Config) Result {
	info, err := os.Stat(srcDir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "could not read source directory %s\n", srcDir)
		return RunFailedWithBuilder
	}
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "could not create output directory: %v\n", err)
			return RunFailedWritingOutputFiles
		}
	}

	var ignoreMatcher *ignore.GitIgnore
	if cfg.IgnoreFile != "" {
		if gi, err := ignore.CompileIgnoreFile(filepath.Join(srcDir, cfg.IgnoreFile)); err == nil {
			ignoreMatcher = gi
		}
	}

	result := RunSuccessful
	models, failures := 0, 0
	filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path == srcDir {
				return nil
			}
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			return nil
		}
		if filepath.Ext(name) != ".rebeca" {
			return nil
		}
		if ignoreMatcher != nil {
			if rel, err := filepath.Rel(srcDir, path); err == nil && ignoreMatcher.MatchesPath(rel) {
				return nil
			}
		}
		models++
		switch Run(path, cfg) {
		case RunSuccessfulButWithWarnings:
			result = RunSuccessfulButWithWarnings
		case RunFailedWithBuilder, RunFailedWithTranslator, RunFailedWritingOutputFiles:
			fmt.Fprintf(os.Stderr, "failed to translate %s\n", path)
			failures++
			result = RunSuccessfulButWithWarnings
		}
		return nil
	})
	if models == 0 {
		fmt.Fprintf(os.Stderr, "found no model files in %s\n", srcDir)
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d models failed\n", failures, models)
	}
	return result
}

func outputCallGraph(model *rebeca.Model, outName string) {
	graph, _ := analyzer.BuildCallGraph(model)

	// Call sites file
	callsPath := outName + ".calls.txt"
	callsFile, err := os.Create(callsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not write calls.txt file: %v\n", err)
		return
	}
	defer callsFile.Close()

	callsFile.WriteString(graph.String())

	// Communication graph file
	dot, err := graph.Graph()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not build communication graph: %v\n", err)
		return
	}
	dotPath := outName + ".comm.dot"
	dotFile, err := os.Create(dotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not write comm.dot file: %v\n", err)
		return
	}
	defer dotFile.Close()

	dotFile.WriteString(dot.String())
}
