package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rekotypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// FoodLabel is one detected label with its confidence on a 0..1 scale.
type FoodLabel struct {
	Name       string
	Confidence float64
}

// LabelDetector detects food labels in an image. Tests substitute a stub.
type LabelDetector interface {
	DetectFood(ctx context.Context, imageData []byte) ([]FoodLabel, error)
}

// VisionService detects food labels with Amazon Rekognition.
type VisionService struct {
	client *rekognition.Client
}

func NewVisionService(client *rekognition.Client) *VisionService {
	return &VisionService{client: client}
}

// Labels that describe the scene rather than the food itself.
var nonFoodLabels = map[string]bool{
	"food":      true,
	"meal":      true,
	"dish":      true,
	"plate":     true,
	"cutlery":   true,
	"table":     true,
	"platter":   true,
	"lunch":     true,
	"dinner":    true,
	"breakfast": true,
	"brunch":    true,
}

// DetectFood runs Rekognition label detection and returns food labels
// ordered by confidence, generic scene labels filtered out.
func (s *VisionService) DetectFood(ctx context.Context, imageData []byte) ([]FoodLabel, error) {
	out, err := s.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image: &rekotypes.Image{
			Bytes: imageData,
		},
		MaxLabels:     aws.Int32(20),
		MinConfidence: aws.Float32(50),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect labels: %w", err)
	}

	var labels []FoodLabel
	for _, l := range out.Labels {
		if l.Name == nil || l.Confidence == nil {
			continue
		}
		name := *l.Name
		if nonFoodLabels[strings.ToLower(name)] {
			continue
		}
		labels = append(labels, FoodLabel{
			Name:       name,
			Confidence: float64(*l.Confidence) / 100,
		})
	}

	log.Printf("[VisionService] Detected %d food labels", len(labels))
	return labels, nil
}
