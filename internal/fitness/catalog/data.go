package catalog

import "github.com/2beens/forgezone/internal/fitness"

var cells = map[fitness.Goal]map[fitness.Level]map[fitness.BodyPart][]string{
	fitness.GoalBuildMuscle: {
		fitness.LevelBeginner: {
			fitness.BodyPartAbs:       {"3x10 Crunches", "3x12 Leg Raises", "2x30s Plank", "3x15 Bicycle Crunches", "3x12 Russian Twists"},
			fitness.BodyPartChest:     {"3x10 Push-Ups", "3x12 Incline Push-Ups", "2x15 Chest Dips", "3x10 Dumbbell Bench Press", "3x12 Dumbbell Flys"},
			fitness.BodyPartBack:      {"3x8 Bent-Over Rows", "3x10 Supermans", "2x12 Reverse Flys", "3x10 Dumbbell Rows", "3x12 Band Pull-Aparts"},
			fitness.BodyPartLegs:      {"3x10 Bodyweight Squats", "3x12 Lunges", "2x15 Calf Raises", "3x10 Goblet Squats", "3x12 Step-Ups"},
			fitness.BodyPartArms:      {"3x10 Bicep Curls", "3x12 Tricep Dips", "2x15 Hammer Curls", "3x10 Dumbbell Kickbacks", "3x12 Concentration Curls"},
			fitness.BodyPartShoulders: {"3x10 Shoulder Press", "3x12 Lateral Raises", "2x15 Front Raises", "3x10 Dumbbell Shrugs", "3x12 Y-Raises"},
			fitness.BodyPartGlutes:    {"3x10 Glute Bridges", "3x12 Donkey Kicks", "2x15 Fire Hydrants", "3x10 Clamshells", "3x12 Side-Lying Leg Lifts"},
			fitness.BodyPartCardio:    {"20 min Jog", "15 min Jump Rope", "10 min Burpees", "20 min Brisk Walk", "15 min High Knees", "12 min Stair Climbing"},
		},
		fitness.LevelIntermediate: {
			fitness.BodyPartAbs:       {"4x12 Hanging Leg Raises", "3x45s Plank", "4x15 Russian Twists", "3x15 Mountain Climbers", "4x12 Cable Woodchoppers"},
			fitness.BodyPartChest:     {"4x8 Bench Press", "3x12 Dumbbell Flys", "4x10 Incline Press", "3x12 Cable Crossovers", "4x8 Dumbbell Pullover"},
			fitness.BodyPartBack:      {"4x8 Pull-Ups", "3x10 Bent-Over Rows", "4x10 Lat Pulldowns", "3x12 T-Bar Rows", "4x8 Dumbbell Shrugs"},
			fitness.BodyPartLegs:      {"4x8 Squats", "3x12 Lunges", "4x10 Leg Press", "3x12 Romanian Deadlifts", "4x8 Goblet Squats"},
			fitness.BodyPartArms:      {"4x8 Bicep Curls", "3x12 Tricep Pushdowns", "4x10 Skull Crushers", "3x12 Overhead Extension", "4x8 Close-Grip Bench"},
			fitness.BodyPartShoulders: {"4x8 Overhead Press", "3x12 Lateral Raises", "4x10 Arnold Press", "3x12 Front Raises", "4x8 Dumbbell Shrugs"},
			fitness.BodyPartGlutes:    {"4x8 Hip Thrusts", "3x12 Glute Kickbacks", "4x10 Single-Leg Bridges", "3x15 Sumo Squats", "4x8 Barbell Hip Thrusts"},
			fitness.BodyPartCardio:    {"30 min Run", "20 min Jump Rope", "15 min Sprint Intervals", "25 min Rowing", "20 min Cycling", "18 min Battle Ropes"},
		},
		fitness.LevelAdvanced: {
			fitness.BodyPartAbs:       {"5x15 Weighted Crunches", "4x20 Cable Woodchoppers", "3x60s Plank", "5x12 Hanging Knee Raises", "4x15 Ab Rollouts"},
			fitness.BodyPartChest:     {"5x5 Bench Press", "4x10 Incline Dumbbell Press", "5x8 Weighted Push-Ups", "4x10 Dumbbell Pullover", "5x6 Chest Press Machine"},
			fitness.BodyPartBack:      {"5x5 Deadlifts", "4x8 Weighted Pull-Ups", "5x6 T-Bar Rows", "4x10 Lat Pulldowns", "5x8 Rack Pulls"},
			fitness.BodyPartLegs:      {"5x5 Barbell Squats", "4x10 Lunges", "5x6 Romanian Deadlifts", "4x10 Bulgarian Split Squats", "5x8 Hack Squats"},
			fitness.BodyPartArms:      {"5x5 Barbell Curls", "4x10 Weighted Dips", "5x6 Close-Grip Bench", "4x10 Skull Crushers", "5x8 Zottman Curls"},
			fitness.BodyPartShoulders: {"5x5 Military Press", "4x10 Arnold Press", "5x8 Dumbbell Press", "4x10 Rear Delt Flys", "5x6 Barbell Shrugs"},
			fitness.BodyPartGlutes:    {"5x5 Hip Thrusts", "4x10 Single-Leg Glute Bridges", "5x6 Sumo Squats", "4x10 Cable Kickbacks", "5x8 Barbell Glute Bridges"},
			fitness.BodyPartCardio:    {"45 min Run", "30 min HIIT", "20 min Assault Bike", "40 min Rowing", "25 min Stairmaster", "30 min Sled Push"},
		},
	},
	fitness.GoalBuildEndurance: {
		fitness.LevelBeginner: {
			fitness.BodyPartAbs:       {"3x15 Bicycle Crunches", "3x20 Mountain Climbers", "2x30s Hollow Hold", "3x15 Plank", "3x20 Russian Twists"},
			fitness.BodyPartChest:     {"3x15 Push-Ups", "3x20 Chest Dips", "2x30s Isometric Press", "3x20 Wide Push-Ups", "3x15 Incline Push-Ups"},
			fitness.BodyPartBack:      {"3x15 Supermans", "3x20 Bodyweight Rows", "2x30s Plank Rows", "3x15 Band Pull-Aparts", "3x20 Cat-Cow"},
			fitness.BodyPartLegs:      {"2km Jog", "3x15 Bodyweight Squats", "3x20 Walking Lunges", "3x15 Calf Raises", "2x20s Wall Sits"},
			fitness.BodyPartArms:      {"3x15 Arm Circles", "3x20 Tricep Dips", "2x30s Shadow Boxing", "3x15 Bicep Curls", "3x20 Pushdowns"},
			fitness.BodyPartShoulders: {"3x15 Shoulder Taps", "3x20 Front Raises", "2x30s Lateral Hold", "3x15 Lateral Raises", "3x20 Y-Raises"},
			fitness.BodyPartGlutes:    {"3x15 Glute Bridges", "3x20 Donkey Kicks", "2x30s Squat Hold", "3x15 Fire Hydrants", "3x20 Clamshells"},
			fitness.BodyPartCardio:    {"25 min Jog", "20 min Jump Rope", "15 min Burpees", "25 min Brisk Walk", "20 min High Knees", "18 min Stair Climb"},
		},
		fitness.LevelIntermediate: {
			fitness.BodyPartAbs:       {"4x20 Mountain Climbers", "3x30 Russian Twists", "3x45s Plank", "4x15 Bicycle Crunches", "3x20 Hanging Leg Raises"},
			fitness.BodyPartChest:     {"4x12 Push-Ups", "3x15 Incline Push-Ups", "3x20 Burpees", "4x15 Chest Dips", "3x20 Wide Push-Ups"},
			fitness.BodyPartBack:      {"4x12 Bodyweight Rows", "3x15 Supermans", "3x20 Plank Rows", "4x12 Band Pull-Aparts", "3x15 Dumbbell Rows"},
			fitness.BodyPartLegs:      {"5km Run", "3x20 Lunges", "3x15 Jump Squats", "4x15 Step-Ups", "3x20 Calf Raises"},
			fitness.BodyPartArms:      {"4x12 Bicep Curls", "3x15 Tricep Pushdowns", "3x20 Shadow Boxing", "4x15 Hammer Curls", "3x20 Pushdowns"},
			fitness.BodyPartShoulders: {"4x12 Lateral Raises", "3x15 Shoulder Press", "3x20 Y-Raises", "4x15 Front Raises", "3x20 Shoulder Taps"},
			fitness.BodyPartGlutes:    {"4x12 Glute Kickbacks", "3x15 Sumo Squats", "3x20 Fire Hydrants", "4x15 Glute Bridges", "3x20 Single-Leg Bridges"},
			fitness.BodyPartCardio:    {"35 min Run", "25 min Jump Rope", "18 min Sprint Intervals", "30 min Rowing", "25 min Cycling", "20 min Battle Ropes"},
		},
		fitness.LevelAdvanced: {
			fitness.BodyPartAbs:       {"5x25 Mountain Climbers", "4x30 Weighted Russian Twists", "3x60s Plank", "5x20 Hanging Leg Raises", "4x20 V-Ups"},
			fitness.BodyPartChest:     {"5x15 Clapping Push-Ups", "4x20 Incline Dumbbell Press", "3x25 Burpees", "5x15 Weighted Push-Ups", "4x20 Chest Dips"},
			fitness.BodyPartBack:      {"5x10 Pull-Ups", "4x15 Deadlifts", "3x20 Bent-Over Rows", "5x12 Lat Pulldowns", "4x15 T-Bar Rows"},
			fitness.BodyPartLegs:      {"10km Run", "4x20 Jump Lunges", "3x15 Pistol Squats", "5x15 Box Jumps", "4x20 Calf Raises"},
			fitness.BodyPartArms:      {"5x15 Weighted Dips", "4x20 Hammer Curls", "3x25 Shadow Boxing", "5x12 Bicep Curls", "4x15 Skull Crushers"},
			fitness.BodyPartShoulders: {"5x10 Overhead Press", "4x15 Rear Delt Flys", "3x20 Lateral Raises", "5x12 Arnold Press", "4x15 Y-Raises"},
			fitness.BodyPartGlutes:    {"5x10 Hip Thrusts", "4x15 Single-Leg Glute Bridges", "3x20 Sumo Squats", "5x12 Cable Kickbacks", "4x15 Squat Pulses"},
			fitness.BodyPartCardio:    {"50 min Run", "35 min HIIT", "25 min Assault Bike", "45 min Rowing", "30 min Stairmaster", "35 min Sled Push"},
		},
	},
	fitness.GoalBuildStrength: {
		fitness.LevelBeginner: {
			fitness.BodyPartAbs:       {"3x10 Crunches", "3x12 Leg Raises", "2x30s Plank", "3x10 Bicycle Crunches", "3x12 Russian Twists"},
			fitness.BodyPartChest:     {"3x10 Push-Ups", "3x12 Incline Push-Ups", "2x15 Chest Dips", "3x10 Dumbbell Bench Press", "3x12 Wide Push-Ups"},
			fitness.BodyPartBack:      {"3x8 Bodyweight Rows", "3x10 Supermans", "2x12 Reverse Flys", "3x10 Dumbbell Rows", "3x12 Band Pull-Aparts"},
			fitness.BodyPartLegs:      {"3x10 Bodyweight Squats", "3x12 Lunges", "2x15 Calf Raises", "3x10 Goblet Squats", "3x12 Step-Ups"},
			fitness.BodyPartArms:      {"3x10 Bicep Curls", "3x12 Tricep Dips", "2x15 Hammer Curls", "3x10 Dumbbell Kickbacks", "3x12 Concentration Curls"},
			fitness.BodyPartShoulders: {"3x10 Shoulder Press", "3x12 Lateral Raises", "2x15 Front Raises", "3x10 Dumbbell Shrugs", "3x12 Y-Raises"},
			fitness.BodyPartGlutes:    {"3x10 Glute Bridges", "3x12 Donkey Kicks", "2x15 Fire Hydrants", "3x10 Clamshells", "3x12 Side-Lying Leg Lifts"},
			fitness.BodyPartCardio:    {"20 min Jog", "15 min Jump Rope", "10 min Burpees", "20 min Brisk Walk", "15 min High Knees", "12 min Stair Climbing"},
		},
		fitness.LevelIntermediate: {
			fitness.BodyPartAbs:       {"4x12 Hanging Leg Raises", "3x45s Plank", "4x12 Russian Twists", "3x15 Mountain Climbers", "4x10 Side Plank"},
			fitness.BodyPartChest:     {"4x8 Bench Press", "3x12 Dumbbell Flys", "3x10 Push-Ups", "4x10 Incline Bench Press", "3x12 Cable Crossovers"},
			fitness.BodyPartBack:      {"4x8 Pull-Ups", "3x10 Bent-Over Rows", "3x12 Deadlifts", "4x10 Lat Pulldowns", "3x12 T-Bar Rows"},
			fitness.BodyPartLegs:      {"4x8 Squats", "3x12 Lunges", "3x10 Step-Ups", "4x10 Leg Press", "3x12 Romanian Deadlifts"},
			fitness.BodyPartArms:      {"4x8 Bicep Curls", "3x12 Tricep Pushdowns", "3x10 Skull Crushers", "4x10 Preacher Curls", "3x12 Overhead Extension"},
			fitness.BodyPartShoulders: {"4x8 Overhead Press", "3x12 Lateral Raises", "3x10 Rear Delt Flys", "4x10 Arnold Press", "3x12 Front Raises"},
			fitness.BodyPartGlutes:    {"4x8 Hip Thrusts", "3x12 Glute Kickbacks", "3x15 Sumo Squats", "4x10 Single-Leg Glute Bridges", "3x12 Cable Pull-Throughs"},
			fitness.BodyPartCardio:    {"30 min Run", "20 min Jump Rope", "15 min Sprint Intervals", "25 min Rowing", "20 min Cycling", "18 min Battle Ropes"},
		},
		fitness.LevelAdvanced: {
			fitness.BodyPartAbs:       {"5x15 Weighted Crunches", "4x20 Cable Woodchoppers", "3x60s Plank", "5x12 Hanging Knee Raises", "4x15 Ab Rollouts"},
			fitness.BodyPartChest:     {"5x5 Bench Press", "4x10 Incline Dumbbell Press", "3x12 Cable Flys", "5x8 Weighted Push-Ups", "4x10 Dumbbell Pullover"},
			fitness.BodyPartBack:      {"5x5 Deadlifts", "4x8 Weighted Pull-Ups", "3x12 Barbell Rows", "5x6 T-Bar Rows", "4x10 Lat Pulldowns"},
			fitness.BodyPartLegs:      {"5x5 Barbell Squats", "4x10 Lunges", "3x12 Leg Press", "5x6 Romanian Deadlifts", "4x10 Bulgarian Split Squats"},
			fitness.BodyPartArms:      {"5x5 Barbell Curls", "4x10 Weighted Dips", "3x12 Concentration Curls", "5x6 Close-Grip Bench", "4x10 Skull Crushers"},
			fitness.BodyPartShoulders: {"5x5 Military Press", "4x10 Arnold Press", "3x12 Upright Rows", "5x6 Barbell Shrugs", "4x10 Rear Delt Flys"},
			fitness.BodyPartGlutes:    {"5x5 Hip Thrusts", "4x10 Single-Leg Glute Bridges", "3x12 Barbell Sumo Squats", "5x6 Weighted Step-Ups", "4x10 Cable Kickbacks"},
			fitness.BodyPartCardio:    {"45 min Run", "30 min HIIT", "20 min Assault Bike", "40 min Rowing", "25 min Stairmaster", "30 min Sled Push"},
		},
	},
}
