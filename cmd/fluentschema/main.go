package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	fluentschema "github.com/reoring/fluentschema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "fluentschema CLI\n\nUsage:\n  fluentschema convert -i schema.(json|yaml) [-o out.json] [-pretty]\n  fluentschema check -i schema.(json|yaml)\n\nNotes:\n  - convert re-emits the document in the canonical draft-07 key order.\n  - check reports builder issues (unknown keywords, malformed values) and exits non-zero on any.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in, out string
	var pretty bool
	fs.StringVar(&in, "i", "", "input schema document (.json, .yaml or .yml)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.BoolVar(&pretty, "pretty", false, "indent the output")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	b, err := load(in)
	if err != nil {
		fatalf("import %s: %v", in, err)
	}
	raw, err := b.ToJSON()
	if err != nil {
		fatalf("serialize: %v", err)
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			fatalf("indent: %v", err)
		}
		buf.WriteByte('\n')
		raw = buf.Bytes()
	}
	if out == "" {
		if _, err := os.Stdout.Write(raw); err != nil {
			fatalf("write: %v", err)
		}
		return
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		fatalf("write %s: %v", out, err)
	}
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var in string
	fs.StringVar(&in, "i", "", "input schema document (.json, .yaml or .yml)")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	if _, err := load(in); err != nil {
		if iss, ok := fluentschema.AsIssues(err); ok {
			for _, it := range iss {
				fmt.Fprintf(os.Stderr, "%s: %s at %s (%s)\n", in, it.Code, it.Path, it.Hint)
			}
			os.Exit(1)
		}
		fatalf("import %s: %v", in, err)
	}
	fmt.Fprintf(os.Stderr, "%s: ok\n", in)
}

func load(path string) (*fluentschema.Builder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return fluentschema.FromYAML(data)
	default:
		return fluentschema.FromJSON(data)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
