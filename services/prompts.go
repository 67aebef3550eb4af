package services

// Prompt templates for the four plan variants. Placeholders in braces are
// substituted verbatim with the corresponding plan-request fields.

const dietPlanTemplate = "Create a personalized diet plan for a {gender} person whose ageGroup is {ageGroup} and who is {height} {heightUnit} tall and weighs {currentWeight} {weightUnit} and their target goal weight is {targetWeight} {targetWeightUnit}. " +
	"They have the following dietary preferences: Diet Type is {dietType}, with the following {dietRestrictions} dietary restrictions. " +
	"They prefer {mealPreference} meals per day. create meal day by day. (e.g if the user ask 1 month meal preference, create the plan for 30 days, if the user ask 2 months meal preference, create the plan for 60 days and if the user ask 3 months meal preference, create the plan for 90 days plan). Meals name has to be Breakfast, Lunch and Dinner. and if they ask more than 3 meals a day then the rest meals will be named as Snacks." +
	"Their time goal is to achieve the target weight is {timeGoal} and key goals for the diet plan is {dietGoals} . " +
	"Generate meal plans for each day separately over the specified time period of {timeGoal} (e.g., 1 month = 30 days, 2 months = 60 days and so on)." +
	"they may or may not have additional information regarding their {medicalConditions} which should be consider while creating the plan." +
	"Ensure the diet plan complements their fitness level, target weight, and keyGoals." +
	"The response should be in Structured JSON Format only and not in markdown or any other format. It should be in simple JSON Format and please do not give any other information." +
	"The JSON structure should strictly follow this format:" +
	"the keys JSON structure have will be only: 1. planType: 2. duration: 3. meals_per_day: 4. diet_type: 5. target_weight: 6. diet_goal: 7. meal_plan:  "

const dietYogaPlanTemplate = "Create a personalized diet with yoga plan for a {gender} person whose ageGroup is {ageGroup} and who is {height} {heightUnit} tall and weighs {currentWeight} {weightUnit} and their target goal weight is {targetWeight} {targetWeightUnit}. " +
	"they may or may not have previous yoga experience: {yogaExperience} experience. " +
	"For yoga, focus on {yogaType}, which aligns with their their current activity level: {activityLevel} and also yoga weekly schedule must align with the timeGoal {timeGoal} of the plan (e.g., 1 month timeGoal = 4 weeks) and each week will consist of yoga plan" +
	"They have the following dietary preferences: Diet Type is {dietType}, with the following {dietRestrictions} dietary restrictions. " +
	"They prefer {mealPreference} meals per day. create meal day by day. (e.g if the user ask 1 month meal preference, create the plan for 30 days, if the user ask 2 months meal preference, create the plan for 60 days and if the user ask 3 months meal preference, create the plan for 90 days plan). Meals name has to be Breakfast, Lunch and Dinner. and if they ask more than 3 meals a day then the rest meals will be named as Snacks." +
	"Their time goal is to achieve the target weight is {timeGoal} and key goals for the diet plan is {dietGoals} . " +
	"Generate meal plans for each day separately over the specified time period of {timeGoal} (e.g., 1 month = 30 days, 2 months = 60 days and so on)." +
	"they may or may not have additional information regarding their {medicalConditions} which should be consider while creating the plan" +
	"Ensure the diet with yoga plan complements their fitness level, target weight and keyGoals." +
	"The response should be in Structured JSON Format only and not in markdown or any other format. It should be in simple JSON Format and please do not give any other information." +
	"The JSON structure should strictly follow this format:" +
	"the keys JSON structure have will be only: 1. planType: 2. duration: 3. meals_per_day: 4. diet_type: 5. target_weight: 6. diet_goal: 7. meal_plan: 8. yoga_plan: "

const dietWorkoutPlanTemplate = "Create a personalized diet with workout plan for a {gender} person whose ageGroup is {ageGroup} and who is {height} {heightUnit} tall and weighs {currentWeight} {weightUnit} and their target goal weight is {targetWeight} {targetWeightUnit}. " +
	"For workout, focus on {workoutPreference}, and they are willing to do workout for {workoutDays} a week. their current activity level is {activityLevel} and also workout weekly schedule must align with the timeGoal {timeGoal} of the plan (e.g., 1 month timeGoal = 4 weeks) and each week will consist of daily workout exercises" +
	"They have the following dietary preferences: Diet Type is {dietType}, with the following {dietRestrictions} dietary restrictions. " +
	"They prefer {mealPreference} meals per day. create meal day by day. (e.g if the user ask 1 month meal preference, create the plan for 30 days, if the user ask 2 months meal preference, create the plan for 60 days and if the user ask 3 months meal preference, create the plan for 90 days plan). Meals name has to be Breakfast, Lunch and Dinner. and if they ask more than 3 meals a day then the rest meals will be named as Snacks." +
	"Their time goal is to achieve the target weight is {timeGoal} and key goals for the diet plan is {dietGoals} . " +
	"Generate meal plans for each day separately over the specified time period of {timeGoal} (e.g., 1 month = 30 days, 2 months = 60 days and so on)." +
	"they may or may not have additional information regarding their {medicalConditions} which should be consider while creating the plan" +
	"Ensure the diet with workout plan complements their fitness level, target weight and keyGoals." +
	"The response should be in Structured JSON Format only and not in markdown or any other format. It should be in simple JSON Format and please do not give any other information." +
	"The JSON structure should strictly follow this format:" +
	"the keys JSON structure have will be only: 1. planType: 2. duration: 3. meals_per_day: 4. diet_type: 5. target_weight: 6. diet_goal: 7. meal_plan: 8. workout_plan: "

const dietYogaWorkoutPlanTemplate = "Create a personalized diet with both yoga and workout plan for a {gender} person whose ageGroup is {ageGroup} and who is {height} {heightUnit} tall and weighs {currentWeight} {weightUnit} and their target goal weight is {targetWeight} {targetWeightUnit}. " +
	"they may or may not have previous yoga experience: {yogaExperience} experience. " +
	"For yoga, focus on {yogaType}, which aligns with their their current activity level: {activityLevel} and also yoga weekly schedule must align with the timeGoal {timeGoal} of the plan (e.g., 1 month timeGoal = 4 weeks) and each week will consist of yoga plan" +
	"For workout, focus on {workoutPreference}, and they are willing to do workout for {workoutDays} a week. their current activity level is {activityLevel} and also workout weekly schedule must align with the timeGoal {timeGoal} of the plan (e.g., 1 month timeGoal = 4 weeks) and each week will consist of daily workout exercises" +
	"They have the following dietary preferences: Diet Type is {dietType}, with the following {dietRestrictions} dietary restrictions. " +
	"They prefer {mealPreference} meals per day. create meal day by day. (e.g if the user ask 1 month meal preference, create the plan for 30 days, if the user ask 2 months meal preference, create the plan for 60 days and if the user ask 3 months meal preference, create the plan for 90 days plan). Meals name has to be Breakfast, Lunch and Dinner. and if they ask more than 3 meals a day then the rest meals will be named as Snacks." +
	"Their time goal is to achieve the target weight is {timeGoal} and key goals for the diet plan is {dietGoals} . " +
	"Generate meal plans for each day separately over the specified time period of {timeGoal} (e.g., 1 month = 30 days, 2 months = 60 days and so on)." +
	"they may or may not have additional information regarding their {medicalConditions} which should be consider while creating the plan" +
	"Ensure the diet with both yoga and workout plan complements their fitness level, target weight and keyGoals." +
	"The response should be in Structured JSON Format only and not in markdown or any other format. It should be in simple JSON Format and please do not give any other information." +
	"The JSON structure should strictly follow this format:" +
	"the keys JSON structure have will be only: 1. planType: 2. duration: 3. meals_per_day: 4. diet_type: 5. target_weight: 6. diet_goal: 7. meal_plan: 8. workout_plan: 9. Yoga_Plan "

var planTemplates = map[string]string{
	"diet":            dietPlanTemplate,
	"dietYoga":        dietYogaPlanTemplate,
	"dietWorkout":     dietWorkoutPlanTemplate,
	"dietYogaWorkout": dietYogaWorkoutPlanTemplate,
}
