package services

import (
	"bytes"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/models"
	"github.com/Eduarda-0705/Sistema-Planejamento-Dietas-Refeicoes/utils"

	"gorm.io/gorm"
)

type SeedService struct{ db *gorm.DB }

func NewSeedService(db *gorm.DB) *SeedService { return &SeedService{db: db} }

// SeedFoods populates the food catalog on first boot. It does nothing when
// foods already exist, and a missing or unreadable seed source is logged,
// never fatal.
//
// The source is a semicolon-delimited file (name;type;unit;calories per
// portion, header row first): SEED_FILE on disk by default, or an S3 object
// when SEED_S3_BUCKET is set.
func (s *SeedService) SeedFoods() error {
	var count int64
	if err := s.db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	r, label, err := openSeedSource()
	if err != nil {
		log.Printf("Food seed skipped: %v", err)
		return nil
	}

	foods := ParseFoodSeed(r)
	for i := range foods {
		if err := s.db.Create(&foods[i]).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d foods from %s", len(foods), label)
	return nil
}

func openSeedSource() (io.Reader, string, error) {
	if bucket := os.Getenv("SEED_S3_BUCKET"); bucket != "" {
		key := os.Getenv("SEED_S3_KEY")
		data, err := utils.DownloadObject(bucket, key)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "s3://" + bucket + "/" + key, nil
	}

	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = "foods.csv"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), path, nil
}

// ParseFoodSeed reads the semicolon-delimited table, skipping the header row
// and silently dropping rows with fewer than four columns or a non-numeric
// calorie value.
func ParseFoodSeed(r io.Reader) []models.Food {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	var foods []models.Food
	first := true
	for {
		record, err := cr.Read()
		if err != nil {
			break
		}
		if first {
			first = false
			continue
		}
		if len(record) < 4 {
			continue
		}
		calories, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			continue
		}
		foods = append(foods, models.Food{
			Name:               strings.TrimSpace(record[0]),
			Type:               strings.TrimSpace(record[1]),
			Unit:               strings.TrimSpace(record[2]),
			CaloriesPerPortion: calories,
		})
	}
	return foods
}
