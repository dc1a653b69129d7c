package main

import (
	"log"

	"github.com/Sanl2005/citizen-dna-app/models"

	"golang.org/x/crypto/bcrypt"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func seedRoles() {
	roles := []models.Role{
		{Name: "citizen", Description: "regular citizen account"},
		{Name: "admin", Description: "full access, manages the scheme catalog"},
		{Name: "policymaker", Description: "read access to aggregate data"},
	}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}
}

func seedDB() {
	seedRoles()
	seedAdmin()
	seedSchemes()
	ensureUploadBase()
}

// seedAdmin creates the bootstrap admin account once.
func seedAdmin() {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@example.com").Count(&count)
	if count > 0 {
		return
	}
	var role models.Role
	if err := db.Where("name = ?", "admin").First(&role).Error; err != nil {
		log.Printf("failed to find admin role: %v", err)
		return
	}
	rid := role.ID
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.User{
		FullName:       "Administrator",
		Email:          "admin@example.com",
		HashedPassword: hashed,
		RoleID:         &rid,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("failed to seed admin user: %v", err)
		return
	}
	log.Println("Seeded admin user: email=admin@example.com, password=admin123")
}

// seedSchemes loads the starter scheme catalog when the table is empty.
// The catalog is read-only input to the engine; admins extend it via the API.
func seedSchemes() {
	var count int64
	db.Model(&models.Scheme{}).Count(&count)
	if count > 0 {
		return
	}
	schemes := []models.Scheme{
		// Housing
		{SchemeName: "Pradhan Mantri Awas Yojana (Rural)", Ministry: "Ministry of Rural Development", Description: "Housing for all in rural areas. Special preference for SC/ST and women.", EligibilityRules: "Live in rural area, BPL status", Benefits: "₹1.2 Lakh subsidy", MaxIncome: floatPtr(150000), ApplyURL: "https://pmaymis.gov.in/", Category: "Housing"},
		{SchemeName: "Pradhan Mantri Gramin Awaas Yojana", Ministry: "Ministry of Rural Development", Description: "Providing houses to the houseless and those living in dilapidated houses in rural areas.", EligibilityRules: "Rural BPL, SC/ST, widows", Benefits: "Financial assistance for house construction", MinAge: intPtr(18), MaxIncome: floatPtr(150000), ApplyURL: "https://pmayg.nic.in/", Category: "Housing"},
		// Agriculture
		{SchemeName: "PM-KISAN", Ministry: "Ministry of Agriculture", Description: "Direct income support for farmers.", EligibilityRules: "Small/marginal landholder", Benefits: "₹6000 per year", MinAge: intPtr(18), MaxIncome: floatPtr(200000), ApplyURL: "https://pmkisan.gov.in/", Category: "Agriculture"},
		{SchemeName: "Agri-Clinics and Agri-Business Centres", Ministry: "Ministry of Agriculture", Description: "Self-employment opportunities to unemployed agricultural graduates.", EligibilityRules: "Agri graduates", Benefits: "Back-ended composite subsidy", MinAge: intPtr(18), ApplyURL: "https://www.agriclinics.net/", Category: "Agriculture"},
		// Women
		{SchemeName: "Sukanya Samriddhi Yojana", Ministry: "Ministry of Women & Child Development", Description: "Savings scheme for girl child.", EligibilityRules: "Parent of girl child", Benefits: "High interest rate", RequiredGender: strPtr("Female"), ApplyURL: "https://www.indiapost.gov.in/Financial/Pages/Content/Post-Office-Saving-Schemes.aspx", Category: "Women"},
		{SchemeName: "Ujjwala Yojana", Ministry: "Ministry of Petroleum", Description: "Free LPG connection for BPL households. Preference for rural women.", EligibilityRules: "BPL card holder, Female head", Benefits: "Free LPG connection", MinAge: intPtr(18), MaxIncome: floatPtr(100000), RequiredGender: strPtr("Female"), ApplyURL: "https://www.pmuy.gov.in/", Category: "Women"},
		{SchemeName: "Janani Suraksha Yojana", Ministry: "Ministry of Health", Description: "Reducing maternal and neonatal mortality among poor pregnant women.", EligibilityRules: "Low income mothers", Benefits: "Cash assistance for delivery", MinAge: intPtr(19), MaxIncome: floatPtr(50000), RequiredGender: strPtr("Female"), ApplyURL: "https://nhm.gov.in/jsy.php", Category: "Women"},
		// Health
		{SchemeName: "National Health Mission", Ministry: "Ministry of Health", Description: "Accessible and affordable healthcare for all. High priority for rural populations.", EligibilityRules: "All citizens", Benefits: "Free diagnostics and medicines", ApplyURL: "https://nhm.gov.in/", Category: "Health"},
		{SchemeName: "Ayushman Bharat (PM-JAY)", Ministry: "Ministry of Health", Description: "World's largest health insurance scheme providing ₹5 lakh per family.", EligibilityRules: "Low income, listed in SECC", Benefits: "₹5 Lakh health cover", MaxIncome: floatPtr(100000), ApplyURL: "https://pmjay.gov.in/", Category: "Health"},
		// Pension
		{SchemeName: "Old Age Pension (NSAP)", Ministry: "Ministry of Rural Development", Description: "Monthly pension for elderly citizens below the poverty line.", EligibilityRules: "Age 60+, BPL household", Benefits: "Monthly pension", MinAge: intPtr(60), MaxIncome: floatPtr(60000), ApplyURL: "https://nsap.nic.in/", Category: "Pension"},
		{SchemeName: "Pradhan Mantri Shram Yogi Maandhan (PM-SYM)", Ministry: "Ministry of Labour", Description: "Pension scheme for unorganised workers.", EligibilityRules: "Unorganised workers, income < ₹15,000 per month", Benefits: "Monthly pension of ₹3,000 after age 60", MinAge: intPtr(18), MaxAge: intPtr(40), MaxIncome: floatPtr(180000), ApplyURL: "https://maandhan.in/", Category: "Pension"},
		{SchemeName: "Atal Pension Yojana", Ministry: "Ministry of Finance", Description: "Pension scheme for all citizens in the unorganised sector.", EligibilityRules: "Age 18-40", Benefits: "Guaranteed pension after 60", MinAge: intPtr(18), MaxAge: intPtr(40), ApplyURL: "https://www.npscra.nsdl.co.in/scheme-details.php", Category: "Pension"},
		// Education
		{SchemeName: "Post Matric Scholarship for SC Students", Ministry: "Ministry of Social Justice", Description: "Financial assistance to SC students for post-matric studies.", EligibilityRules: "Continuous education, SC community", Benefits: "Full tuition fee waiver", MinAge: intPtr(15), MaxIncome: floatPtr(250000), ApplyURL: "https://scholarships.gov.in/", Category: "Education"},
		{SchemeName: "National Fellowship for OBC Students", Ministry: "Ministry of Social Justice", Description: "Fellowship for students from Other Backward Classes pursuing higher education.", EligibilityRules: "OBC community, pursuing MPhil/PhD", Benefits: "Monthly stipend", MinAge: intPtr(22), MaxIncome: floatPtr(600000), ApplyURL: "https://socialjustice.gov.in/", Category: "Education"},
		{SchemeName: "PMGDISHA", Ministry: "Ministry of Electronics & IT", Description: "Making 6 crore citizens in rural India digitally literate.", EligibilityRules: "Rural residents, age 18-60", Benefits: "Digital literacy certification", MinAge: intPtr(18), MaxAge: intPtr(60), ApplyURL: "https://www.pmgdisha.in/", Category: "Education"},
		// Skill / Employment / Business
		{SchemeName: "Skill India Mission", Ministry: "Ministry of Skill Development", Description: "Training for youth to get jobs. Open to all communities.", EligibilityRules: "Youth seeking skills", Benefits: "Certified training & job support", MinAge: intPtr(18), ApplyURL: "https://www.skillindia.gov.in/", Category: "Skill Development"},
		{SchemeName: "Start-up Village Entrepreneurship Programme", Ministry: "Ministry of Rural Development", Description: "Support for rural startups and enterprises.", EligibilityRules: "Rural resident, age 18-45", Benefits: "Capital support and mentorship", MinAge: intPtr(18), MaxAge: intPtr(45), MaxIncome: floatPtr(300000), ApplyURL: "https://nrlm.gov.in/", Category: "Rural Development"},
		{SchemeName: "Stand-Up India", Ministry: "Ministry of Finance", Description: "Loans for SC/ST and Women entrepreneurs to set up greenfield enterprises.", EligibilityRules: "SC/ST or Women", Benefits: "₹10 Lakh to ₹100 Lakh loan", MinAge: intPtr(18), ApplyURL: "https://www.standupmitra.in/", Category: "Business"},
		{SchemeName: "Pradhan Mantri Mudra Yojana", Ministry: "Ministry of Finance", Description: "Refinance support for small businesses in non-farm sector.", EligibilityRules: "Micro entrepreneurs", Benefits: "Loans up to ₹10 Lakh", MinAge: intPtr(18), MaxIncome: floatPtr(1200000), ApplyURL: "https://www.mudra.org.in/", Category: "Business"},
		{SchemeName: "Van Dhan Yojana", Ministry: "Ministry of Tribal Affairs", Description: "Livelihood generation for tribals by harnessing forest wealth.", EligibilityRules: "Scheduled Tribe communities, SHGs", Benefits: "Training and value addition support", MinAge: intPtr(18), ApplyURL: "https://trifed.tribal.gov.in/", Category: "Employment"},
	}
	if err := db.Create(&schemes).Error; err != nil {
		log.Printf("failed to seed schemes: %v", err)
		return
	}
	log.Printf("Seeded %d schemes", len(schemes))
}
