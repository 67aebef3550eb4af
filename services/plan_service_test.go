package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abdullahkazmii/BE-NutritionAi/models"
)

func samplePlanRequest(planType string) PlanRequest {
	return PlanRequest{
		Gender:            "male",
		AgeGroup:          "35-44",
		CurrentWeight:     82.5,
		Height:            180,
		TargetWeight:      75,
		TimeGoal:          "1 month",
		PlanType:          planType,
		ActivityLevel:     "low",
		YogaExperience:    "none",
		YogaType:          "vinyasa",
		WorkoutPreference: "cardio",
		WorkoutDays:       "4 days",
		DietType:          "keto",
		DietRestrictions:  "lactose free",
		MealPreference:    "3",
		DietGoals:         "fat loss",
		MedicalConditions: "none",
	}
}

func testPlanService(upstreamURL string) *PlanService {
	return &PlanService{
		client:  &http.Client{Timeout: 5 * time.Second},
		apiKey:  "test-key",
		baseURL: upstreamURL,
		model:   planModel,
	}
}

// fakeUpstream answers like the chat-completions endpoint, returning content
// verbatim and counting how often it was hit.
func fakeUpstream(t *testing.T, status int, content string) (*httptest.Server, *int) {
	t.Helper()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"model overloaded"}}`))
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestBuildPromptInterpolatesEveryField(t *testing.T) {
	service := testPlanService("http://unused.invalid")

	prompt, err := service.BuildPrompt(samplePlanRequest("diet"))
	if err != nil {
		t.Fatalf("BuildPrompt: %v", err)
	}
	for _, want := range []string{"male", "82.5 kg", "180 cm", "75 kg", "keto", "1 month"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if strings.Contains(prompt, "{") {
		t.Fatalf("prompt has unresolved placeholders:\n%s", prompt)
	}
}

func TestBuildPromptSelectsPerPlanType(t *testing.T) {
	service := testPlanService("http://unused.invalid")

	yoga, err := service.BuildPrompt(samplePlanRequest("dietYoga"))
	if err != nil {
		t.Fatalf("BuildPrompt dietYoga: %v", err)
	}
	if !strings.Contains(yoga, "yoga_plan") {
		t.Fatal("dietYoga prompt should request a yoga_plan key")
	}

	workout, err := service.BuildPrompt(samplePlanRequest("dietWorkout"))
	if err != nil {
		t.Fatalf("BuildPrompt dietWorkout: %v", err)
	}
	if !strings.Contains(workout, "workout_plan") {
		t.Fatal("dietWorkout prompt should request a workout_plan key")
	}
}

func TestGeneratePlanUnknownTagFailsBeforeAnyCall(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "jane", "secret123", models.RoleStandard)

	server, hits := fakeUpstream(t, http.StatusOK, `{"planType":"diet"}`)
	service := testPlanService(server.URL)

	_, err := service.GeneratePlan(user.ID, samplePlanRequest("unknown"))
	if !errors.Is(err, ErrUnknownPlanType) {
		t.Fatalf("expected ErrUnknownPlanType, got %v", err)
	}
	if *hits != 0 {
		t.Fatalf("expected no upstream calls, got %d", *hits)
	}
	if n := countRows(t, db, &models.UserGeneratedPlan{}); n != 0 {
		t.Fatalf("expected no generated plan rows, got %d", n)
	}
}

func TestGeneratePlanStoresReturnedTextVerbatim(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "jane", "secret123", models.RoleStandard)

	content := "```json\n{\"planType\": \"diet\", \"duration\": \"30 days\"}\n```"
	server, hits := fakeUpstream(t, http.StatusOK, content)
	service := testPlanService(server.URL)

	generated, err := service.GeneratePlan(user.ID, samplePlanRequest("diet"))
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if *hits != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", *hits)
	}
	if generated.GeneratedPlan != content {
		t.Fatalf("stored text differs from upstream response:\n%q\n%q", generated.GeneratedPlan, content)
	}

	var stored models.UserGeneratedPlan
	if err := db.First(&stored, generated.ID).Error; err != nil {
		t.Fatalf("loading stored plan: %v", err)
	}
	if stored.GeneratedPlan != content {
		t.Fatalf("persisted text differs from upstream response: %q", stored.GeneratedPlan)
	}
	if stored.PlanType != "diet" || stored.GoalTime != "1 month" {
		t.Fatalf("unexpected log row: %+v", stored)
	}
}

func TestGeneratePlanUpstreamFailureIsNotNotFound(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "jane", "secret123", models.RoleStandard)

	server, _ := fakeUpstream(t, http.StatusServiceUnavailable, "")
	service := testPlanService(server.URL)

	_, err := service.GeneratePlan(user.ID, samplePlanRequest("diet"))
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "model overloaded") {
		t.Fatalf("expected upstream message embedded, got %v", err)
	}
	if n := countRows(t, db, &models.UserGeneratedPlan{}); n != 0 {
		t.Fatalf("failed generation must not be persisted, got %d rows", n)
	}
}

func TestGeneratePlanRejectsNonJSONOutput(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "jane", "secret123", models.RoleStandard)

	server, _ := fakeUpstream(t, http.StatusOK, "Sorry, I cannot produce JSON today.")
	service := testPlanService(server.URL)

	_, err := service.GeneratePlan(user.ID, samplePlanRequest("diet"))
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream for invalid JSON, got %v", err)
	}
	if n := countRows(t, db, &models.UserGeneratedPlan{}); n != 0 {
		t.Fatalf("invalid output must not be persisted, got %d rows", n)
	}
}

func TestListGeneratedPlansScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	jane := createTestUser(t, db, "jane", "secret123", models.RoleStandard)
	mark := createTestUser(t, db, "mark", "secret123", models.RoleStandard)

	rows := []models.UserGeneratedPlan{
		{UserID: jane.ID, PlanType: "diet", GeneratedPlan: `{"planType":"diet"}`, GoalTime: "1 month"},
		{UserID: mark.ID, PlanType: "dietYoga", GeneratedPlan: `{"planType":"dietYoga"}`, GoalTime: "2 months"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seeding plans: %v", err)
		}
	}

	plans, err := ListGeneratedPlans(jane.ID)
	if err != nil {
		t.Fatalf("ListGeneratedPlans: %v", err)
	}
	if len(plans) != 1 {
		t.Fatalf("expected 1 plan for jane, got %d", len(plans))
	}
	if plans[0].PlanType != "diet" {
		t.Fatalf("unexpected plan returned: %+v", plans[0])
	}
}
