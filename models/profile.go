package models

// Profile holds the dating profile for a UserAuth record. BirthDate is an ISO
// date string ("2006-01-02") so range comparisons work lexicographically.
type Profile struct {
	UserID        string `dynamodbav:"userId" json:"userId"`
	FullName      string `dynamodbav:"fullName" json:"fullName" validate:"required"`
	Gender        string `dynamodbav:"gender,omitempty" json:"gender" validate:"required"`
	BirthDate     string `dynamodbav:"birthDate" json:"birthDate" validate:"required,datetime=2006-01-02"`
	MaritalStatus string `dynamodbav:"maritalStatus,omitempty" json:"maritalStatus,omitempty"`

	Religion      string `dynamodbav:"religion,omitempty" json:"religion,omitempty"`
	IslamBranch   string `dynamodbav:"islamBranch,omitempty" json:"islamBranch,omitempty"`
	ReligionLevel string `dynamodbav:"religionLevel,omitempty" json:"religionLevel,omitempty"`

	Ethnicity    string   `dynamodbav:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	Hobbies      []string `dynamodbav:"hobbies,omitempty" json:"hobbies,omitempty"`
	HeightCm     int      `dynamodbav:"heightCm,omitempty" json:"heightCm,omitempty"`
	WeightKg     int      `dynamodbav:"weightKg,omitempty" json:"weightKg,omitempty"`
	WearsGlasses bool     `dynamodbav:"wearsGlasses,omitempty" json:"wearsGlasses,omitempty"`

	AddressOrigin  string `dynamodbav:"addressOrigin,omitempty" json:"addressOrigin,omitempty"`
	AddressCurrent string `dynamodbav:"addressCurrent,omitempty" json:"addressCurrent,omitempty"`

	SiblingsCount   int    `dynamodbav:"siblingsCount,omitempty" json:"siblingsCount,omitempty"`
	FamilyCondition string `dynamodbav:"familyCondition,omitempty" json:"familyCondition,omitempty"`

	HealthHistory []string `dynamodbav:"healthHistory,omitempty" json:"healthHistory,omitempty"`
	HealthNotes   string   `dynamodbav:"healthNotes,omitempty" json:"healthNotes,omitempty"`

	Occupation     string `dynamodbav:"occupation,omitempty" json:"occupation,omitempty"`
	SideHustle     string `dynamodbav:"sideHustle,omitempty" json:"sideHustle,omitempty"`
	IncomeRange    string `dynamodbav:"incomeRange,omitempty" json:"incomeRange,omitempty"`
	EducationLevel string `dynamodbav:"educationLevel,omitempty" json:"educationLevel,omitempty"`

	Languages     []string `dynamodbav:"languages,omitempty" json:"languages,omitempty"`
	ChildPlan     string   `dynamodbav:"childPlan,omitempty" json:"childPlan,omitempty"`
	LoveLanguages []string `dynamodbav:"loveLanguages,omitempty" json:"loveLanguages,omitempty"`

	Smoke            bool   `dynamodbav:"smoke,omitempty" json:"smoke,omitempty"`
	Alcohol          bool   `dynamodbav:"alcohol,omitempty" json:"alcohol,omitempty"`
	Diet             string `dynamodbav:"diet,omitempty" json:"diet,omitempty"`
	PhysicalActivity string `dynamodbav:"physicalActivity,omitempty" json:"physicalActivity,omitempty"`
	SleepHabit       string `dynamodbav:"sleepHabit,omitempty" json:"sleepHabit,omitempty"`
	TimeManagement   string `dynamodbav:"timeManagement,omitempty" json:"timeManagement,omitempty"`
	ShoppingHabit    string `dynamodbav:"shoppingHabit,omitempty" json:"shoppingHabit,omitempty"`

	Instagram string `dynamodbav:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `dynamodbav:"facebook,omitempty" json:"facebook,omitempty"`
	LinkedIn  string `dynamodbav:"linkedin,omitempty" json:"linkedin,omitempty"`
	TikTok    string `dynamodbav:"tiktok,omitempty" json:"tiktok,omitempty"`

	City     string `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Country  string `dynamodbav:"country,omitempty" json:"country,omitempty"`
	PhotoURL string `dynamodbav:"photoUrl,omitempty" json:"photoUrl,omitempty"`
}

// ProfilesTable is the DynamoDB table name for dating profiles
const ProfilesTable = "Profiles"
