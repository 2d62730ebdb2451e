package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msnoigrs/gofurigana"
	"github.com/msnoigrs/gofurigana/accent"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage of %s:
	%s -r settingsfile [-p] word1 [word2 ...]

Options:
`, os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}

	var (
		settingspath string
		plain        bool
	)
	flag.StringVar(&settingspath, "r", "", "settings file (json)")
	flag.BoolVar(&plain, "p", false, "look up arguments as written only, without deriving a reading")

	flag.Parse()

	if settingspath == "" || len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	settingsReader, err := os.OpenFile(settingspath, os.O_RDONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", settingspath, err)
		os.Exit(1)
	}
	settings := gofurigana.NewSettingsJSON()
	err = settings.ParseSettingsJSON(filepath.Dir(settingspath), settingsReader)
	settingsReader.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", settingspath, err)
		os.Exit(1)
	}

	config := settings.GetBaseConfig()
	dict, err := accent.LoadDictionary(config.AccentCorpus, config.AccentDatabase, config.AccentCache)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	var kana gofurigana.KanaConverter
	if !plain {
		kagome, err := gofurigana.NewKagomeKanaConverter()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		kana = kagome
	}

	for _, word := range flag.Args() {
		pitches := gofurigana.LookupPronunciations(dict, kana, word)
		if len(pitches) == 0 {
			fmt.Printf("%s\t(not found)\n", word)
			continue
		}
		for _, pitch := range pitches {
			fmt.Printf("%s\t%s\t%s\n", word, pitch.Katakana, pitch.HTML)
		}
	}
}
