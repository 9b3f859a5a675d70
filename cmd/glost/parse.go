package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/glost/render"
	"github.com/revelaction/glost/schema"
)

// Option structs for subcommands that have flags
type ConvertOptions struct {
	Schema      string
	Align       string
	Lang        string
	TaggerURL   string
	Punctuation bool
	Gold        bool
	Test        bool
	Tilde       bool
	Expand      bool
	DictPath    string
	Name        string
	Out         string
	Ref         string
}

type DictOptions struct {
	Schema    string
	Align     string
	Lang      string
	TaggerURL string
	Tilde     bool
	UseGold   bool
	DictPath  string
	Name      string
}

type SpaceOptions struct {
	Schema             string
	Align              string
	Train              string
	TrainAlign         string
	Lang               string
	TaggerURL          string
	Tilde              bool
	Punctuation        bool
	Test               bool
	WithoutTranslation bool
	StopWords          string
	DictPath           string
	Name               string
	Out                string
}

type ReconstructOptions struct {
	Fill bool
	Out  string
}

type SplitOptions struct {
	Train  int
	Dev    int
	Test   int
	Prefix string
}

type StatOptions struct {
	Test bool
	JSON bool
}

type InspectOptions struct {
	Schema    string
	Align     string
	Lang      string
	TaggerURL string
	Tilde     bool
	Test      bool
	NoColor   bool
	NoPrefix  bool
	Format    string
}

// enumFlag implements flag.Value for restricted strings
type enumFlag struct {
	allowed []string
	value   *string
}

func (e *enumFlag) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumFlag) Set(value string) error {
	for _, a := range e.allowed {
		if a == value {
			*e.value = value
			return nil
		}
	}
	return fmt.Errorf("allowed values are %s", strings.Join(e.allowed, ", "))
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("glost", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return "", nil, err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return "", nil, err
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	cmd := fs.Arg(0)
	cmdArgs := fs.Args()[1:]
	return cmd, cmdArgs, nil
}

// schemaVar registers the -schema/-s enum flag.
func schemaVar(fs *flag.FlagSet, value *string) {
	*value = "base"
	sf := &enumFlag{allowed: schema.Names, value: value}
	fs.Var(sf, "schema", "Unit layout: "+strings.Join(schema.Names, ", "))
	fs.Var(sf, "s", "alias for -schema")
}

// taggerVars registers the annotation flags shared by the pipeline
// commands.
func taggerVars(fs *flag.FlagSet, lang, url *string, tilde *bool) {
	fs.StringVar(lang, "lang", "en", "Language code of the translation tier")
	fs.StringVar(lang, "l", "en", "alias for -lang")

	fs.StringVar(url, "tagger-url", os.Getenv("GLOST_TAGGER_URL"), "URL of a tagger service (empty: built-in tagger)")
	fs.StringVar(url, "u", os.Getenv("GLOST_TAGGER_URL"), "alias for -tagger-url")

	fs.BoolVar(tilde, "tilde", false, "Keep tilde characters in translations")
}

func requireCorpus(fs *flag.FlagSet, ui UI, cmd string) (string, error) {
	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", fmt.Errorf("%s command needs exactly one argument: <corpus>", cmd)
	}

	path := fs.Arg(0)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return "", fmt.Errorf("corpus file not found: %s", path)
	}

	return path, nil
}

func requireFile(path, what string) error {
	if path == "" {
		return fmt.Errorf("%s must be specified", what)
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("%s not found: %s", what, path)
	}
	return nil
}

func parseConvertArgs(args []string, ui UI) (ConvertOptions, string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ConvertOptions
	schemaVar(fs, &opts.Schema)
	taggerVars(fs, &opts.Lang, &opts.TaggerURL, &opts.Tilde)

	fs.StringVar(&opts.Align, "align", "", "Word alignment file (eflomal/fast_align format)")
	fs.StringVar(&opts.Align, "a", "", "alias for -align")

	fs.BoolVar(&opts.Punctuation, "punctuation", false, "Encode punctuation morphemes")
	fs.BoolVar(&opts.Punctuation, "p", false, "alias for -punctuation")

	fs.BoolVar(&opts.Gold, "gold", false, "Use gold glosses as unit labels")
	fs.BoolVar(&opts.Gold, "g", false, "alias for -gold")

	fs.BoolVar(&opts.Test, "test", false, "Covered corpus: encode input fields only")
	fs.BoolVar(&opts.Test, "t", false, "alias for -test")

	fs.BoolVar(&opts.Expand, "expand", false, "Resolve skipped glosses via dictionary and translation fallback")
	fs.BoolVar(&opts.Expand, "e", false, "alias for -expand")

	fs.StringVar(&opts.DictPath, "dict-path", os.Getenv("GLOST_DICT_PATH"), "Training dictionary for gloss expansion (implies -expand)")
	fs.StringVar(&opts.DictPath, "d", os.Getenv("GLOST_DICT_PATH"), "alias for -dict-path")

	fs.StringVar(&opts.Name, "name", "dict", "Dictionary name inside the repository")
	fs.StringVar(&opts.Name, "n", "dict", "alias for -name")

	fs.StringVar(&opts.Out, "out", "", "Unit file path (default: stdout)")
	fs.StringVar(&opts.Out, "o", "", "alias for -out")

	fs.StringVar(&opts.Ref, "ref", "", "Also write the reference file to this path")
	fs.StringVar(&opts.Ref, "r", "", "alias for -ref")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s convert [options] <corpus>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Convert an IGT corpus into a unit file, optionally with a reference file.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	corpusPath, err := requireCorpus(fs, ui, "convert")
	if err != nil {
		return opts, "", err
	}

	if !opts.Test {
		if err := requireFile(opts.Align, "alignment file (-a)"); err != nil {
			return opts, "", err
		}
	}

	if opts.Test && opts.Ref != "" {
		return opts, "", errors.New("a covered corpus has no reference outputs (-ref needs gold glosses)")
	}

	return opts, corpusPath, nil
}

func parseDictArgs(args []string, ui UI) (DictOptions, string, error) {
	fs := flag.NewFlagSet("dict", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DictOptions
	schemaVar(fs, &opts.Schema)
	taggerVars(fs, &opts.Lang, &opts.TaggerURL, &opts.Tilde)

	fs.StringVar(&opts.Align, "align", "", "Word alignment file (eflomal/fast_align format)")
	fs.StringVar(&opts.Align, "a", "", "alias for -align")

	fs.BoolVar(&opts.UseGold, "use-gold", false, "Fall back to gold glosses for unaligned morphemes")

	fs.StringVar(&opts.DictPath, "dict-path", os.Getenv("GLOST_DICT_PATH"), "Path to dictionary directory or SQLite file")
	fs.StringVar(&opts.DictPath, "d", os.Getenv("GLOST_DICT_PATH"), "alias for -dict-path")

	fs.StringVar(&opts.Name, "name", "dict", "Dictionary name inside the repository")
	fs.StringVar(&opts.Name, "n", "dict", "alias for -name")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s dict [options] <corpus>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Build the training dictionary of a corpus and store it.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	corpusPath, err := requireCorpus(fs, ui, "dict")
	if err != nil {
		return opts, "", err
	}

	if err := requireFile(opts.Align, "alignment file (-a)"); err != nil {
		return opts, "", err
	}

	if opts.DictPath == "" {
		return opts, "", errors.New("dictionary path must be specified via -d or GLOST_DICT_PATH")
	}

	return opts, corpusPath, nil
}

func parseSpaceArgs(args []string, ui UI) (SpaceOptions, string, error) {
	fs := flag.NewFlagSet("space", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SpaceOptions
	schemaVar(fs, &opts.Schema)
	taggerVars(fs, &opts.Lang, &opts.TaggerURL, &opts.Tilde)

	fs.StringVar(&opts.Align, "align", "", "Word alignment file of the corpus")
	fs.StringVar(&opts.Align, "a", "", "alias for -align")

	fs.StringVar(&opts.Train, "train", "", "Training corpus for the grammatical label set (default: the corpus itself)")
	fs.StringVar(&opts.TrainAlign, "train-align", "", "Word alignment file of the training corpus (default: -align)")

	fs.BoolVar(&opts.Punctuation, "punctuation", false, "Predict punctuation labels")
	fs.BoolVar(&opts.Punctuation, "p", false, "alias for -punctuation")

	fs.BoolVar(&opts.Test, "test", false, "Covered corpus: dictionary candidates instead of reference outputs")
	fs.BoolVar(&opts.Test, "t", false, "alias for -test")

	fs.BoolVar(&opts.WithoutTranslation, "without-translation", false, "Drop translation-derived candidates")
	fs.BoolVar(&opts.WithoutTranslation, "w", false, "alias for -without-translation")

	fs.StringVar(&opts.StopWords, "stop-words", "", "File with translation lemmas to exclude, one per line")

	fs.StringVar(&opts.DictPath, "dict-path", os.Getenv("GLOST_DICT_PATH"), "Path to dictionary directory or SQLite file")
	fs.StringVar(&opts.DictPath, "d", os.Getenv("GLOST_DICT_PATH"), "alias for -dict-path")

	fs.StringVar(&opts.Name, "name", "dict", "Dictionary name inside the repository")
	fs.StringVar(&opts.Name, "n", "dict", "alias for -name")

	fs.StringVar(&opts.Out, "out", "", "Search space file path (default: stdout)")
	fs.StringVar(&opts.Out, "o", "", "alias for -out")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s space [options] <corpus>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Generate the label search space file for a corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	corpusPath, err := requireCorpus(fs, ui, "space")
	if err != nil {
		return opts, "", err
	}

	if opts.Train == "" {
		if opts.Test {
			return opts, "", errors.New("a covered corpus needs -train for the grammatical label set")
		}
		opts.Train = corpusPath
	}
	if opts.TrainAlign == "" {
		opts.TrainAlign = opts.Align
	}

	if err := requireFile(opts.Train, "training corpus (-train)"); err != nil {
		return opts, "", err
	}
	if err := requireFile(opts.TrainAlign, "training alignment file (-train-align)"); err != nil {
		return opts, "", err
	}
	if !opts.Test {
		if err := requireFile(opts.Align, "alignment file (-a)"); err != nil {
			return opts, "", err
		}
	}
	if opts.StopWords != "" {
		if err := requireFile(opts.StopWords, "stop word file (-stop-words)"); err != nil {
			return opts, "", err
		}
	}

	return opts, corpusPath, nil
}

func parseReconstructArgs(args []string, ui UI) (ReconstructOptions, string, string, error) {
	fs := flag.NewFlagSet("reconstruct", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts ReconstructOptions
	fs.BoolVar(&opts.Fill, "fill", false, "Check the covered sources byte for byte before filling")

	fs.StringVar(&opts.Out, "out", "", "Output IGT file path (default: stdout)")
	fs.StringVar(&opts.Out, "o", "", "alias for -out")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s reconstruct [options] <covered> <decoded>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Turn decoder output back into an IGT gloss tier.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", "", err
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("reconstruct command needs two arguments: <covered> <decoded>")
	}

	coveredPath := fs.Arg(0)
	decodedPath := fs.Arg(1)

	if err := requireFile(coveredPath, "covered corpus"); err != nil {
		return opts, "", "", err
	}
	if err := requireFile(decodedPath, "decoded file"); err != nil {
		return opts, "", "", err
	}

	return opts, coveredPath, decodedPath, nil
}

func parseSplitArgs(args []string, ui UI) (SplitOptions, string, error) {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SplitOptions
	fs.IntVar(&opts.Train, "train", 0, "Number of leading sentences for the train partition")
	fs.IntVar(&opts.Dev, "dev", 0, "Number of sentences before the test block for the dev partition")
	fs.IntVar(&opts.Test, "test", 0, "Number of trailing sentences for the test partition")

	fs.StringVar(&opts.Prefix, "prefix", "", "Output path prefix (default: the corpus path)")
	fs.StringVar(&opts.Prefix, "p", "", "alias for -prefix")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s split [options] <corpus>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Partition an IGT corpus into <prefix>.train, <prefix>.dev and <prefix>.test.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	corpusPath, err := requireCorpus(fs, ui, "split")
	if err != nil {
		return opts, "", err
	}

	if opts.Train+opts.Dev+opts.Test == 0 {
		return opts, "", errors.New("at least one of -train, -dev, -test must be positive")
	}

	if opts.Prefix == "" {
		opts.Prefix = corpusPath
	}

	return opts, corpusPath, nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, string, string, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	fs.BoolVar(&opts.Test, "test", false, "Corpus is covered (no gloss tier)")
	fs.BoolVar(&opts.Test, "t", false, "alias for -test")

	fs.BoolVar(&opts.JSON, "json", false, "Print statistics as JSON")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options] <corpus> [predicted]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Show corpus statistics; with a predicted corpus, also the gloss accuracy.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", "", err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("stat command needs one or two arguments: <corpus> [predicted]")
	}

	corpusPath := fs.Arg(0)
	if err := requireFile(corpusPath, "corpus file"); err != nil {
		return opts, "", "", err
	}

	predictedPath := ""
	if fs.NArg() == 2 {
		predictedPath = fs.Arg(1)
		if err := requireFile(predictedPath, "predicted corpus file"); err != nil {
			return opts, "", "", err
		}
		if opts.Test {
			return opts, "", "", errors.New("accuracy needs gold glosses; drop -test")
		}
	}

	return opts, corpusPath, predictedPath, nil
}

func parseInspectArgs(args []string, ui UI) (InspectOptions, string, error) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts InspectOptions
	schemaVar(fs, &opts.Schema)
	taggerVars(fs, &opts.Lang, &opts.TaggerURL, &opts.Tilde)

	fs.StringVar(&opts.Align, "align", "", "Word alignment file; enables the align and unit views")
	fs.StringVar(&opts.Align, "a", "", "alias for -align")

	fs.BoolVar(&opts.Test, "test", false, "Corpus is covered (no gloss tier)")
	fs.BoolVar(&opts.Test, "t", false, "alias for -test")

	fs.BoolVar(&opts.NoColor, "no-color", false, "Show sentences without formatting (color)")
	fs.BoolVar(&opts.NoColor, "c", false, "alias for -no-color")

	fs.BoolVar(&opts.NoPrefix, "no-prefix", false, "Show sentences without index prefixes")
	fs.BoolVar(&opts.NoPrefix, "x", false, "alias for -no-prefix")

	opts.Format = render.Defaultformat
	formatFlag := &enumFlag{allowed: render.SupportedFormats(), value: &opts.Format}
	fs.Var(formatFlag, "format", "Sentence view: the IGT tiers (igt), the alignment (align) or the units (unit)")
	fs.Var(formatFlag, "f", "alias for -format")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s inspect [options] <corpus>\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Enter interactive corpus inspection mode.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return opts, "", err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return opts, "", err
	}

	corpusPath, err := requireCorpus(fs, ui, "inspect")
	if err != nil {
		return opts, "", err
	}

	if opts.Align != "" {
		if err := requireFile(opts.Align, "alignment file (-a)"); err != nil {
			return opts, "", err
		}
	}

	return opts, corpusPath, nil
}

func parseBashArgs(args []string, ui UI) error {
	fs := flag.NewFlagSet("bash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s bash\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Output bash completion script.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(ui.Out)
			fs.Usage()
			return err
		}
		fs.SetOutput(ui.Err)
		fprintErr(ui.Err, err)
		fs.Usage()
		return err
	}
	return nil
}

func parseCompleteArgs(args []string, ui UI) ([]string, error) {
	fs := flag.NewFlagSet("complete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return fs.Args(), nil
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: %s command [command options] [arguments...]\n", os.Args[0])
		_, _ = fmt.Fprintf(output, "\nDescription:\n")
		_, _ = fmt.Fprintf(output, "  IGT corpus converter for morpheme gloss prediction\n")
		_, _ = fmt.Fprintf(output, "\nCommands:\n")
		_, _ = fmt.Fprintf(output, "  convert      Convert an IGT corpus into a unit file.\n")
		_, _ = fmt.Fprintf(output, "  dict         Build and store the training dictionary.\n")
		_, _ = fmt.Fprintf(output, "  space        Generate the label search space file.\n")
		_, _ = fmt.Fprintf(output, "  split        Partition a corpus into train, dev and test files.\n")
		_, _ = fmt.Fprintf(output, "  reconstruct  Turn decoder output back into a gloss tier.\n")
		_, _ = fmt.Fprintf(output, "  stat         Show corpus statistics and gloss accuracy.\n")
		_, _ = fmt.Fprintf(output, "  inspect      Enter interactive corpus inspection mode.\n")
		_, _ = fmt.Fprintf(output, "  bash         Output bash completion script.\n")
		_, _ = fmt.Fprintf(output, "  version      Show version information.\n")
		_, _ = fmt.Fprintf(output, "  help         Show help for a command.\n")
	}
}
