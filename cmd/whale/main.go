// Command whale is the interactive shell and script runner for the whale
// expression language.
//
// Usage:
//
//	whale                   start the interactive shell
//	whale -c "1 + 2"        evaluate an expression and print the result
//	whale -p script.whale   evaluate a file and print the result
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/peterh/liner"

	"github.com/solaeus/whale"
)

type config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
}

func defaultConfig() config {
	history := ""
	if configDir, err := os.UserConfigDir(); err == nil {
		history = filepath.Join(configDir, "whale", "history")
	}
	return config{Prompt: "* ", HistoryFile: history}
}

// loadConfig reads the optional shell configuration, falling back to the
// defaults when the file does not exist.
func loadConfig() config {
	loaded := defaultConfig()
	configDir, err := os.UserConfigDir()
	if err != nil {
		return loaded
	}
	path := filepath.Join(configDir, "whale", "config.toml")
	if _, err := toml.DecodeFile(path, &loaded); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "whale: ignoring %s: %v\n", path, err)
	}
	return loaded
}

func main() {
	command := flag.String("c", "", "evaluate the given expression and exit")
	path := flag.String("p", "", "evaluate the given file and exit")
	flag.Parse()

	if *command != "" {
		evalAndPrint(*command)
		return
	}
	if *path != "" {
		contents, err := os.ReadFile(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "whale: %v\n", err)
			os.Exit(1)
		}
		evalAndPrint(string(contents))
		return
	}
	runShell(loadConfig())
}

func evalAndPrint(src string) {
	value, err := whale.Evaluate(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "whale: %v\n", err)
		os.Exit(1)
	}
	printValue(value)
}

func printValue(value whale.Value) {
	if value.IsEmpty() {
		return
	}
	fmt.Println(value)
}

func runShell(conf config) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	context := whale.NewVariableMap()
	line.SetCompleter(func(prefix string) []string {
		return complete(prefix, context)
	})

	if conf.HistoryFile != "" {
		if file, err := os.Open(conf.HistoryFile); err == nil {
			line.ReadHistory(file)
			file.Close()
		}
	}

	for {
		input, err := line.Prompt(conf.Prompt)
		if err != nil {
			// Ctrl-C and Ctrl-D both leave the shell.
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		value, err := whale.EvaluateWithContext(input, context)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		printValue(value)
	}

	if conf.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(conf.HistoryFile), 0o755); err == nil {
			if file, err := os.Create(conf.HistoryFile); err == nil {
				line.WriteHistory(file)
				file.Close()
			}
		}
	}
}

// complete offers macro identifiers and context variables whose names start
// with the last word of the line.
func complete(prefix string, context *whale.VariableMap) []string {
	start := strings.LastIndexAny(prefix, " (,;") + 1
	head, word := prefix[:start], prefix[start:]

	var candidates []string
	for _, macro := range context.Macros().List() {
		candidates = append(candidates, macro.Info().Identifier)
	}
	candidates = append(candidates, context.Keys()...)
	sort.Strings(candidates)

	var completions []string
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, word) {
			completions = append(completions, head+candidate)
		}
	}
	return completions
}
