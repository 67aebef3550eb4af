package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/abdullahkazmii/BE-NutritionAi/config"
	"github.com/abdullahkazmii/BE-NutritionAi/models"
)

const (
	openAIBaseURL   = "https://api.openai.com/v1/chat/completions"
	planModel       = "gpt-4o-mini"
	planTemperature = 0.7
	planCallTimeout = 60 * time.Second
)

// PlanRequest carries every attribute the prompt templates interpolate.
// Units default to kg/cm when omitted.
type PlanRequest struct {
	Gender                  string  `json:"gender" binding:"required"`
	AgeGroup                string  `json:"ageGroup" binding:"required"`
	CurrentWeight           float64 `json:"currentWeight" binding:"required"`
	WeightUnit              string  `json:"weightUnit"`
	Height                  float64 `json:"height" binding:"required"`
	HeightUnit              string  `json:"heightUnit"`
	TargetWeight            float64 `json:"targetWeight" binding:"required"`
	TargetWeightUnit        string  `json:"targetWeightUnit"`
	TimeGoal                string  `json:"timeGoal"`
	PlanType                string  `json:"planType" binding:"required"`
	ActivityLevel           string  `json:"activityLevel"`
	YogaExperience          string  `json:"yogaExperience"`
	ExperienceDetails       string  `json:"experienceDetails"`
	WorkoutPreference       string  `json:"workoutPreference"`
	DietType                string  `json:"dietType" binding:"required"`
	DietRestrictions        string  `json:"dietRestrictions"`
	DietRestrictionsDetails string  `json:"dietRestrictionsDetails"`
	MealPreference          string  `json:"mealPreference" binding:"required"`
	DietGoals               string  `json:"dietGoals"`
	YogaType                string  `json:"yogaType"`
	WorkoutType             string  `json:"workoutType"`
	WorkoutDetails          string  `json:"workoutDetails"`
	WorkoutDays             string  `json:"workoutDays"`
	MedicalConditions       string  `json:"medicalConditions"`
	MedicalDetails          string  `json:"medicalDetails"`
}

func (r *PlanRequest) applyDefaults() {
	if r.WeightUnit == "" {
		r.WeightUnit = "kg"
	}
	if r.TargetWeightUnit == "" {
		r.TargetWeightUnit = "kg"
	}
	if r.HeightUnit == "" {
		r.HeightUnit = "cm"
	}
}

func (r *PlanRequest) fields() map[string]string {
	return map[string]string{
		"gender":            r.Gender,
		"ageGroup":          r.AgeGroup,
		"currentWeight":     formatFloat(r.CurrentWeight),
		"weightUnit":        r.WeightUnit,
		"height":            formatFloat(r.Height),
		"heightUnit":        r.HeightUnit,
		"targetWeight":      formatFloat(r.TargetWeight),
		"targetWeightUnit":  r.TargetWeightUnit,
		"timeGoal":          r.TimeGoal,
		"activityLevel":     r.ActivityLevel,
		"yogaExperience":    r.YogaExperience,
		"workoutPreference": r.WorkoutPreference,
		"dietType":          r.DietType,
		"dietRestrictions":  r.DietRestrictions,
		"mealPreference":    r.MealPreference,
		"dietGoals":         r.DietGoals,
		"yogaType":          r.YogaType,
		"workoutDays":       r.WorkoutDays,
		"medicalConditions": r.MedicalConditions,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// PlanService assembles prompts and forwards them to the chat-completions
// endpoint, logging each successful generation.
type PlanService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewPlanService() *PlanService {
	return &PlanService{
		client:  &http.Client{Timeout: planCallTimeout},
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: openAIBaseURL,
		model:   planModel,
	}
}

// BuildPrompt selects the template for the request's plan type and
// interpolates every field verbatim. An unrecognized tag fails here, before
// any network I/O.
func (s *PlanService) BuildPrompt(req PlanRequest) (string, error) {
	template, ok := planTemplates[req.PlanType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlanType, req.PlanType)
	}

	req.applyDefaults()
	pairs := make([]string, 0, 2*len(req.fields()))
	for key, value := range req.fields() {
		pairs = append(pairs, "{"+key+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template), nil
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GeneratePlan runs the full assembler: template selection, interpolation,
// the external call, output validation, and the append-only log write. The
// stored text is exactly what the model returned.
func (s *PlanService) GeneratePlan(userID uint, req PlanRequest) (*models.UserGeneratedPlan, error) {
	prompt, err := s.BuildPrompt(req)
	if err != nil {
		return nil, err
	}

	content, err := s.complete(prompt)
	if err != nil {
		return nil, err
	}

	// The model is instructed to return bare JSON but is not trusted to:
	// fence-stripped output must parse before anything is persisted.
	cleaned := cleanModelOutput(content)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrUpstream)
	}

	generated := models.UserGeneratedPlan{
		UserID:        userID,
		PlanType:      req.PlanType,
		GeneratedPlan: content,
		GoalTime:      req.TimeGoal,
	}
	if err := config.DB.Create(&generated).Error; err != nil {
		return nil, err
	}
	return &generated, nil
}

func (s *PlanService) complete(prompt string) (string, error) {
	body := chatCompletionRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: planTemperature,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.baseURL, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: api error (%d): %s", ErrUpstream, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: api error (%d): %s", ErrUpstream, resp.StatusCode, string(respBytes))
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBytes, &completion); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	if len(completion.Choices) == 0 || strings.TrimSpace(completion.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}
	return completion.Choices[0].Message.Content, nil
}

// cleanModelOutput strips the markdown code fences models wrap JSON in
// despite instructions not to.
func cleanModelOutput(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	return strings.TrimSpace(cleaned)
}

// ListGeneratedPlans returns the caller's generation history, newest first.
// An empty history is an empty list, not an error.
func ListGeneratedPlans(userID uint) ([]models.UserGeneratedPlan, error) {
	plans := make([]models.UserGeneratedPlan, 0)
	if err := config.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
