package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/msnoigrs/gofurigana/accent"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -o file [-c file] [-d description] [-check] file1 [file2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		outputpath  string
		cachepath   string
		description string
		check       bool
	)
	flag.StringVar(&outputpath, "o", "", "output to file")
	flag.StringVar(&cachepath, "c", "", "fast-cache file to write")
	flag.StringVar(&description, "d", "", "comment")
	flag.BoolVar(&check, "check", false, "rebuild and compare against the existing output file")

	flag.Parse()

	if outputpath == "" || len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	builder := accent.NewDatabaseBuilder()

	fmt.Fprint(os.Stderr, "reading the corpus...")
	for _, corpuspath := range flag.Args() {
		err := build(builder, corpuspath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", corpuspath, err)
			os.Exit(1)
		}
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, " %d entries, %d keys\n", builder.EntrySize, builder.KeySize())

	if check {
		diff, err := compareRebuild(builder, outputpath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		if diff {
			fmt.Fprintf(os.Stderr, "%s differs from the rebuilt database\n", outputpath)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s is identical to the rebuilt database\n", outputpath)
		return
	}

	outputWriter, err := os.OpenFile(outputpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", outputpath, err)
		os.Exit(1)
	}
	err = builder.WriteTo(outputWriter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to write database: %s\n", err)
		os.Exit(1)
	}
	err = outputWriter.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to write database: %s\n", err)
		os.Exit(1)
	}

	if cachepath != "" {
		err := writeCache(outputpath, cachepath, description)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fail to write cache: %s\n", err)
			os.Exit(1)
		}
	}
}

func build(builder *accent.DatabaseBuilder, corpuspath string) error {
	corpusReader, err := os.OpenFile(corpuspath, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer corpusReader.Close()

	return builder.ReadCorpus(corpusReader)
}

func compareRebuild(builder *accent.DatabaseBuilder, outputpath string) (bool, error) {
	existing, err := os.ReadFile(outputpath)
	if err != nil {
		return false, err
	}
	var rebuilt bytes.Buffer
	if err := builder.WriteTo(&rebuilt); err != nil {
		return false, err
	}
	return !bytes.Equal(existing, rebuilt.Bytes()), nil
}

func writeCache(outputpath, cachepath, description string) error {
	hash, err := accent.HashFile(outputpath)
	if err != nil {
		return err
	}
	derivative, err := os.OpenFile(outputpath, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer derivative.Close()

	dict, err := accent.ReadDerivative(derivative)
	if err != nil {
		return err
	}

	cacheWriter, err := os.OpenFile(cachepath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	err = accent.WriteCache(cacheWriter, dict, hash, time.Now().Unix(), description)
	if err != nil {
		_ = cacheWriter.Close()
		return err
	}
	return cacheWriter.Close()
}
