//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/markkurossi/prg/block"
	"github.com/markkurossi/prg/env"
	"github.com/markkurossi/prg/jobs"
	"github.com/markkurossi/prg/prg"
	"github.com/markkurossi/prg/symmetric"
	"github.com/markkurossi/prg/timing"
)

var verbose bool

func main() {
	kindName := flag.String("kind", env.DefaultKind.String(), "cipher kind")
	seedHex := flag.String("seed", "", "seed as hex (random if empty)")
	ivHex := flag.String("iv", "", "iv as hex")
	count := flag.Uint64("count", 0, "start counter")
	n := flag.Int("n", 64, "number of bytes to generate")
	advance := flag.Bool("advance", false, "advance counter without output")
	bench := flag.Bool("bench", false, "benchmark all cipher kinds")
	rounds := flag.Int("rounds", 16, "benchmark rounds")
	jobFile := flag.String("jobs", "", "run jobs from YAML file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()

	log.SetFlags(0)

	kind, err := symmetric.ParseKind(*kindName)
	if err != nil {
		log.Fatal(err)
	}
	config := &env.Config{
		Kind: kind,
	}

	if len(*jobFile) > 0 {
		err = runJobs(*jobFile, config)
		if err != nil {
			log.Fatal(err)
		}
		return
	}
	if *n < 0 {
		log.Fatalf("invalid length %d", *n)
	}
	if *advance {
		fmt.Printf("next count: %d\n", prg.AdvanceCounterN(*count, *n))
		return
	}

	var seed, iv block.Block
	if len(*seedHex) > 0 {
		seed, err = block.Parse(*seedHex)
	} else {
		seed, err = config.NewSeed()
	}
	if err != nil {
		log.Fatalf("invalid seed: %v", err)
	}
	if len(*ivHex) > 0 {
		iv, err = block.Parse(*ivHex)
		if err != nil {
			log.Fatalf("invalid iv: %v", err)
		}
	}

	if *bench {
		runBench(seed, iv, *n, *rounds)
		return
	}

	if verbose {
		fmt.Printf(" - Kind : %v\n", config.GetKind())
		fmt.Printf(" - Seed : %v\n", seed)
		fmt.Printf(" - IV   : %v\n", iv)
		fmt.Printf(" - Count: %d\n", *count)
	}
	out := make([]byte, *n)
	next, err := prg.FillRandom(config, seed, iv, *count, out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hex.EncodeToString(out))
	fmt.Printf("next count: %d\n", next)
}

func runJobs(path string, config *env.Config) error {
	file, err := jobs.Load(path, config)
	if err != nil {
		return err
	}
	results, err := file.Run()
	if err != nil {
		return err
	}
	for _, result := range results {
		if verbose {
			fmt.Printf(" - %s: seed=%v, count=%d\n",
				result.Job.Name, result.Seed, result.Count)
		}
		if result.Output != nil {
			fmt.Printf("%s: %x\n", result.Job.Name, result.Output)
		}
		fmt.Printf("%s: next count: %d\n", result.Job.Name, result.Next)
	}
	return nil
}

func runBench(seed, iv block.Block, n, rounds int) {
	if verbose {
		fmt.Printf(" - %s/%s: AES=%v, ARM64 AES=%v\n",
			runtime.GOOS, runtime.GOARCH, cpu.X86.HasAES, cpu.ARM64.HasAES)
	}
	if rounds <= 0 {
		log.Fatalf("invalid rounds %d", rounds)
	}
	out := make([]byte, n)

	t := timing.New()
	t.Columns = []string{"Mode", "HW"}
	for _, kind := range symmetric.Kinds {
		setupStart := time.Now()
		for i := 0; i < rounds; i++ {
			c, err := symmetric.NewBlocks(kind, seed, iv)
			if err != nil {
				log.Fatalf("%v: %v", kind, err)
			}
			c.Close()
		}
		setupEnd := time.Now()

		var count uint64
		var err error
		for i := 0; i < rounds; i++ {
			count, err = prg.FillPseudoRandom(kind, seed, iv, count, out)
			if err != nil {
				log.Fatalf("%v: %v", kind, err)
			}
		}
		genEnd := time.Now()

		sample := t.Sample(kind.String(), timing.FileSize(n*rounds),
			[]string{kind.Mode().String(), hardware(kind)})
		sample.SubSample("Setup", setupEnd)
		sample.SubSample("Fill", genEnd)
		sample.AbsSubSample("Setup/call",
			setupEnd.Sub(setupStart)/time.Duration(rounds))
	}
	t.Print(os.Stdout)
}

func hardware(kind symmetric.Kind) string {
	if kind.Algorithm() == symmetric.AES128 &&
		(cpu.X86.HasAES || cpu.ARM64.HasAES) {
		return "AES"
	}
	return "-"
}
