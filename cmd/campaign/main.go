// Package main trains the term-deposit classifier on a campaign dataset
// and reports confusion-matrix metrics on a held-out validation set.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/bankml/campaign/campaign"
)

func main() {
	trainPath := flag.String("train", "bank-train.csv", "training dataset")
	validPath := flag.String("validate", "bank-validation.csv", "validation dataset")
	history := flag.String("history", "", "optional CSV file for per-epoch training history")
	flag.Parse()

	cfg := campaign.DefaultConfig()

	train, err := campaign.Load(*trainPath)
	if err != nil {
		log.Fatal("Error loading training set: ", err)
	}
	valid, err := campaign.Load(*validPath)
	if err != nil {
		log.Fatal("Error loading validation set: ", err)
	}

	positives := train.PositiveCount()
	fmt.Printf("Training samples: %d (%d positive, %.2f%%)\n",
		train.Len(), positives, float64(positives)/float64(train.Len())*100)
	fmt.Printf("Validation samples: %d\n", valid.Len())

	// Balance the training set only, then fit the scaler on it and
	// reapply the same statistics to the validation set.
	train.Oversample(cfg.OversampleFactor)
	fmt.Printf("Training samples after balancing: %d\n", train.Len())

	var scaler campaign.Scaler
	if err := scaler.Fit(train.Samples); err != nil {
		log.Fatal("Error fitting scaler: ", err)
	}
	if err := scaler.Apply(valid.Samples); err != nil {
		log.Fatal("Error scaling validation set: ", err)
	}

	network := campaign.NewNetwork()

	var extra []campaign.Callback
	if *history != "" {
		extra = append(extra, campaign.HistoryLogger(*history))
	}
	trainer := campaign.NewTrainer(cfg, extra...)

	fmt.Println("Training:")
	epochs, finalErr := trainer.Fit(network, train.Samples, train.Labels)
	fmt.Printf("Stopped after %d epochs, error = %.4f\n\n", epochs, finalErr)

	matrix := campaign.Evaluate(network, valid, cfg.Threshold)
	fmt.Println("Confusion matrix:")
	fmt.Println(matrix)
	fmt.Println()
	fmt.Printf("Accuracy:  %.4f\n", matrix.Accuracy())
	fmt.Printf("Precision: %.4f\n", matrix.Precision())
	fmt.Printf("Recall:    %.4f\n", matrix.Recall())
	fmt.Printf("F1 Score:  %.4f\n", matrix.F1())
}
