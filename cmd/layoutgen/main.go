// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command layoutgen generates a keyboard layout that minimizes a
// cost metric against one or more counted corpora.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"

	"github.com/czcorpus/layoutgen/v2/cnf"
	"github.com/czcorpus/layoutgen/v2/library"
	"github.com/czcorpus/layoutgen/v2/report"
)

var (
	version   string
	build     string
	gitCommit string
)

func dumpTemplate() {
	conf := cnf.Config{
		Keys:      []string{"home_l_index", "home_r_index"},
		Chars:     []string{"a", "s"},
		Corpora:   []cnf.CorpusSource{{Path: "corpus.txt", Format: "text"}},
		NgramSize: 2,
		Metric:    cnf.MetricConf{Name: "taxicab"},
		Positions: [][2]float64{{0, 0}, {1, 0}},
		Search:    cnf.SearchConf{Strategy: "hillclimb"},
	}
	b, err := sonic.ConfigDefault.MarshalIndent(conf, "", "  ")
	if err != nil {
		log.Fatalf("failed to dump template config: %s", err)
	}
	fmt.Println(string(b))
}

func generate(confPath string, asJSON bool) {
	conf, err := cnf.LoadConf(confPath)
	if err != nil {
		log.Fatal("FATAL: ", err)
	}
	layout, scores, err := library.GenerateLayout(conf)
	if err != nil {
		log.Fatal("FATAL: ", err)
	}
	result := report.Result[string]{Layout: layout, Scores: scores}
	if asJSON {
		if err := report.PrintJSON(os.Stdout, result); err != nil {
			log.Fatal("FATAL: ", err)
		}
		return
	}
	if err := report.Print(os.Stdout, result); err != nil {
		log.Fatal("FATAL: ", err)
	}
}

func analyze(confPath string) {
	conf, err := cnf.LoadConf(confPath)
	if err != nil {
		log.Fatal("FATAL: ", err)
	}
	for _, src := range conf.Corpora {
		fmt.Printf("%s: format=%s weight=%g\n", src.Path, src.Format, src.Weight)
	}
}

func main() {
	flag.Usage = func() {
		fmt.Println("\n+-------------------------------------------------------------+")
		fmt.Println("|  layoutgen - a program for generating minimal-cost keyboard  |")
		fmt.Println("|               layouts from counted corpora                  |")
		fmt.Printf("|                       version %s                         |\n", version)
		fmt.Println("+-------------------------------------------------------------+")
		fmt.Println("\nUsage:")
		fmt.Println("layoutgen generate config.json\n\t(generate a layout as configured in config.json)")
		fmt.Println("layoutgen analyze config.json\n\t(print a summary of config.json's corpus sources)")
		fmt.Println("layoutgen template\n\t(write a sample config to stdout)")
		fmt.Println("layoutgen version\n\tshow detailed version information")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
	}

	generateCommand := flag.NewFlagSet("generate", flag.ExitOnError)
	jsonOutput := generateCommand.Bool("json", false, "print the result as JSON")
	generateCommand.Usage = func() {
		fmt.Println("Usage: layoutgen generate [-json] config.json")
	}
	analyzeCommand := flag.NewFlagSet("analyze", flag.ExitOnError)
	analyzeCommand.Usage = func() {
		fmt.Println("Usage: layoutgen analyze config.json")
	}
	templateCommand := flag.NewFlagSet("template", flag.ExitOnError)
	templateCommand.Usage = func() {
		fmt.Println("Usage: layoutgen template [> config.json]")
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCommand.Parse(os.Args[2:])
		generate(generateCommand.Arg(0), *jsonOutput)
	case "analyze":
		analyzeCommand.Parse(os.Args[2:])
		analyze(analyzeCommand.Arg(0))
	case "template":
		templateCommand.Parse(os.Args[2:])
		dumpTemplate()
	case "version":
		fmt.Printf("layoutgen %s\nbuild date: %s\nlast commit: %s\n", version, build, gitCommit)
	default:
		log.Fatalf("Unknown command '%s'", os.Args[1])
	}
}
