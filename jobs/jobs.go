//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package jobs implements YAML batch files of pseudorandom generation
// jobs.
package jobs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/markkurossi/prg/block"
	"github.com/markkurossi/prg/env"
	"github.com/markkurossi/prg/prg"
	"github.com/markkurossi/prg/symmetric"
)

// File defines a batch of jobs.
type File struct {
	Jobs []*Job `yaml:"jobs"`
}

// Job defines one pseudorandom generation job. If Count is omitted,
// the job continues from the counter that the previous job with the
// same seed returned. If Seed is omitted, a random seed is created.
type Job struct {
	Name    string  `yaml:"name"`
	Kind    string  `yaml:"kind"`
	Seed    string  `yaml:"seed"`
	IV      string  `yaml:"iv"`
	Count   *uint64 `yaml:"count"`
	Length  int     `yaml:"length"`
	Advance bool    `yaml:"advance"`

	kind symmetric.Kind
	seed block.Block
	iv   block.Block
}

// Result contains the result of a job.
type Result struct {
	Job    *Job
	Seed   block.Block
	Count  uint64
	Next   uint64
	Output []byte
}

// Load loads the batch file.
func Load(path string, config *env.Config) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := Parse(data, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Parse parses and validates the batch data.
func Parse(data []byte, config *env.Config) (*File, error) {
	file := new(File)
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, err
	}
	for idx, job := range file.Jobs {
		if job == nil {
			return nil, fmt.Errorf("job %d: empty job", idx)
		}
		if len(job.Name) == 0 {
			job.Name = fmt.Sprintf("job-%d", idx)
		}
		if err := job.init(config); err != nil {
			return nil, fmt.Errorf("job %s: %w", job.Name, err)
		}
	}
	return file, nil
}

func (job *Job) init(config *env.Config) error {
	var err error

	if len(job.Kind) == 0 {
		job.kind = config.GetKind()
	} else {
		job.kind, err = symmetric.ParseKind(job.Kind)
		if err != nil {
			return err
		}
	}
	if len(job.Seed) == 0 {
		job.seed, err = config.NewSeed()
	} else {
		job.seed, err = block.Parse(job.Seed)
	}
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	if len(job.IV) > 0 {
		job.iv, err = block.Parse(job.IV)
		if err != nil {
			return fmt.Errorf("invalid iv: %w", err)
		}
	}
	if job.Length < 0 {
		return fmt.Errorf("invalid length %d", job.Length)
	}
	return nil
}

// Run runs the jobs in order, threading the counter of each seed from
// one job to the next.
func (file *File) Run() ([]*Result, error) {
	counters := make(map[block.Block]uint64)

	var results []*Result
	for _, job := range file.Jobs {
		count := counters[job.seed]
		if job.Count != nil {
			count = *job.Count
		}
		result := &Result{
			Job:   job,
			Seed:  job.seed,
			Count: count,
		}
		if job.Advance {
			result.Next = prg.AdvanceCounterN(count, job.Length)
		} else {
			result.Output = make([]byte, job.Length)
			next, err := prg.FillPseudoRandom(job.kind, job.seed, job.iv,
				count, result.Output)
			if err != nil {
				return nil, fmt.Errorf("job %s: %w", job.Name, err)
			}
			result.Next = next
		}
		counters[job.seed] = result.Next
		results = append(results, result)
	}
	return results, nil
}
