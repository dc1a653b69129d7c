package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Sanl2005/citizen-dna-app/models"
	"github.com/Sanl2005/citizen-dna-app/pkg/chat"
	"github.com/Sanl2005/citizen-dna-app/pkg/ocr"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// documentKinds maps an upload kind to the profile column that mirrors it.
var documentKinds = map[string]func(p *models.CitizenProfile, fileName string){
	"marriage_cert":  func(p *models.CitizenProfile, f string) { p.MarriageCert = f },
	"divorce_cert":   func(p *models.CitizenProfile, f string) { p.DivorceCert = f },
	"widow_cert":     func(p *models.CitizenProfile, f string) { p.WidowCert = f },
	"community_cert": func(p *models.CitizenProfile, f string) { p.CommunityCert = f },
	"aadhar_card":    func(p *models.CitizenProfile, f string) { p.AadharCard = f },
	"income_cert":    func(p *models.CitizenProfile, f string) { p.IncomeCert = f },
}

func setupRoutes(r *gin.Engine) {
	r.POST("/auth/register", registerHandler)
	r.POST("/auth/login", loginHandler)
	r.POST("/auth/refresh", refreshHandler)
	r.POST("/auth/revoke", revokeRefreshHandler)
	r.GET("/schemes", listSchemesHandler)

	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/auth/me", meHandler)
	authGroup.POST("/citizen/profile", upsertProfileHandler)
	authGroup.GET("/citizen/profile", getProfileHandler)
	authGroup.GET("/citizen/recommendations", listRecommendationsHandler)
	authGroup.POST("/citizen/documents", uploadDocumentHandler)
	authGroup.GET("/citizen/documents", listDocumentsHandler)
	authGroup.POST("/schemes", createSchemeHandler)
	authGroup.POST("/chat/message", chatMessageHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		email, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		c.Set("email", email)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

// getUserFromContext fetches the currently authenticated user using the email set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	emailVal, _ := c.Get("email")
	if emailVal == nil {
		return nil, false
	}
	email := emailVal.(string)
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// getProfileFromContext resolves the authenticated user's citizen profile.
func getProfileFromContext(c *gin.Context) (*models.CitizenProfile, bool) {
	user, ok := getUserFromContext(c)
	if !ok {
		return nil, false
	}
	var p models.CitizenProfile
	if err := db.Where("user_id = ?", user.ID).First(&p).Error; err != nil {
		return nil, false
	}
	return &p, true
}

func issueAccessToken(user *models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  user.Email,
		"role": roleNameOf(user),
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

func registerHandler(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := RegisterUser(req.FullName, req.Email, req.Phone, req.Password, "citizen")
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	// sign the user in immediately so the client can go straight to onboarding
	tokenString, err := issueAccessToken(&user, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully", "token": tokenString})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	tokenString, err := issueAccessToken(&user, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString, "refresh_token": refreshToken})
}

// createAndStoreRefreshToken generates a random refresh token, stores its hash with expiry and returns the raw token string
func createAndStoreRefreshToken(userID uint) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	rt := models.RefreshToken{UserID: userID, TokenHash: th, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return token, nil
}

func findRefreshTokenByRaw(token string) (*models.RefreshToken, error) {
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	var rt models.RefreshToken
	if err := db.Where("token_hash = ?", th).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	var user models.User
	if err := db.First(&user, rt.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tokenString, err := issueAccessToken(&user, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

func meHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"full_name": user.FullName,
		"email":     user.Email,
		"phone":     user.Phone,
		"role":      roleNameOf(user),
	})
}

// upsertProfileHandler creates or replaces the citizen profile and rebuilds the
// recommendation set in the same transaction, so scores, profile fields and
// recommendations always move together.
func upsertProfileHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Age               int     `json:"age" binding:"required"`
		Gender            string  `json:"gender" binding:"required"`
		Income            float64 `json:"income"`
		Education         string  `json:"education"`
		Occupation        string  `json:"occupation"`
		EmploymentStatus  string  `json:"employment_status"`
		MaritalStatus     string  `json:"marital_status"`
		LocationState     string  `json:"location_state"`
		LocationDistrict  string  `json:"location_district"`
		AreaOfResidence   string  `json:"area_of_residence"`
		SocialCategory    string  `json:"social_category"`
		MinorityStatus    bool    `json:"minority_status"`
		DisabilityStatus  bool    `json:"disability_status"`
		FamilySize        int     `json:"family_size"`
		IsStudent         bool    `json:"is_student"`
		SingleParentChild bool    `json:"single_parent_child"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.EmploymentStatus == "" {
		req.EmploymentStatus = "Unemployed"
	}
	if req.AreaOfResidence == "" {
		req.AreaOfResidence = "Urban"
	}
	if req.FamilySize <= 0 {
		req.FamilySize = 1
	}

	var profile models.CitizenProfile
	isNew := false
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		profile = models.CitizenProfile{UserID: user.ID}
		isNew = true
	}
	profile.Age = req.Age
	profile.Gender = req.Gender
	profile.Income = req.Income
	profile.Education = req.Education
	profile.Occupation = req.Occupation
	profile.EmploymentStatus = req.EmploymentStatus
	profile.MaritalStatus = req.MaritalStatus
	profile.LocationState = req.LocationState
	profile.LocationDistrict = req.LocationDistrict
	profile.AreaOfResidence = req.AreaOfResidence
	profile.SocialCategory = req.SocialCategory
	profile.MinorityStatus = req.MinorityStatus
	profile.DisabilityStatus = req.DisabilityStatus
	profile.FamilySize = req.FamilySize
	profile.IsStudent = req.IsStudent
	profile.SingleParentChild = req.SingleParentChild

	var schemes []models.Scheme
	if err := db.Find(&schemes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schemes"})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if isNew {
			// need a profile ID before the recommendation rows can reference it
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		}
		recs := recommender.Rebuild(&profile, schemes)
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}
		// full replace: stale recommendations must never survive a profile edit
		if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) > 0 {
			if err := tx.Create(&recs).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func getProfileHandler(c *gin.Context) {
	profile, ok := getProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// listRecommendationsHandler returns the persisted recommendation set with the
// scheme rows preloaded, best match first.
func listRecommendationsHandler(c *gin.Context) {
	profile, ok := getProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	var recs []models.Recommendation
	if err := db.Preload("Scheme").Where("profile_id = ?", profile.ID).
		Order("confidence desc").Find(&recs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// uploadDocumentHandler stores a supporting certificate for the current
// profile. Income certificates additionally go through OCR so the declared
// income can be cross-checked later.
func uploadDocumentHandler(c *gin.Context) {
	profile, ok := getProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile missing"})
		return
	}
	kind := c.PostForm("kind")
	setField, valid := documentKinds[kind]
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown document kind"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}
	ct := file.Header.Get("Content-Type")

	baseDir := uploadBaseDir()
	folder := strconv.FormatUint(uint64(profile.ID), 10)
	fileName := kind + "_" + filepath.Base(file.Filename)
	relPath := folder + "/" + fileName
	fullPath := baseDir + "/" + relPath
	if err := os.MkdirAll(baseDir+"/"+folder, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	var extracted *int64
	if kind == "income_cert" {
		if amt, conf, _, err := ocr.ExtractIncomeFromImage(fullPath); err == nil && amt > 0 && conf > 0.3 {
			extracted = &amt
		}
	}

	// upsert: one document per kind per profile
	var doc models.Document
	if err := db.Where("profile_id = ? AND kind = ?", profile.ID, kind).First(&doc).Error; err == nil {
		doc.FileName = fileName
		doc.StorePath = relPath
		doc.ContentType = ct
		if extracted != nil {
			doc.ExtractedIncome = extracted
		}
		if err := db.Save(&doc).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
			return
		}
	} else {
		doc = models.Document{ProfileID: profile.ID, Kind: kind, FileName: fileName, StorePath: relPath, ContentType: ct, ExtractedIncome: extracted}
		if err := db.Create(&doc).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
			return
		}
	}

	setField(profile, fileName)
	db.Save(profile)

	resp := gin.H{"id": doc.ID, "kind": kind, "path": relPath}
	if doc.ExtractedIncome != nil {
		resp["extracted_income"] = *doc.ExtractedIncome
	}
	c.JSON(http.StatusOK, resp)
}

func listDocumentsHandler(c *gin.Context) {
	profile, ok := getProfileFromContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	var docs []models.Document
	if err := db.Where("profile_id = ?", profile.ID).Order("id desc").Find(&docs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// listSchemesHandler is public: the catalog itself is not sensitive.
func listSchemesHandler(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var schemes []models.Scheme
	if err := db.Order("id").Offset(skip).Limit(limit).Find(&schemes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, schemes)
}

func createSchemeHandler(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	var req struct {
		SchemeName       string   `json:"scheme_name" binding:"required"`
		Ministry         string   `json:"ministry"`
		Description      string   `json:"description"`
		EligibilityRules string   `json:"eligibility_rules"`
		Benefits         string   `json:"benefits"`
		MinAge           *int     `json:"min_age"`
		MaxAge           *int     `json:"max_age"`
		MaxIncome        *float64 `json:"max_income"`
		RequiredGender   *string  `json:"required_gender"`
		ApplyURL         string   `json:"apply_url"`
		Category         string   `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scheme := models.Scheme{
		SchemeName:       req.SchemeName,
		Ministry:         req.Ministry,
		Description:      req.Description,
		EligibilityRules: req.EligibilityRules,
		Benefits:         req.Benefits,
		MinAge:           req.MinAge,
		MaxAge:           req.MaxAge,
		MaxIncome:        req.MaxIncome,
		RequiredGender:   req.RequiredGender,
		ApplyURL:         req.ApplyURL,
		Category:         req.Category,
	}
	if err := db.Create(&scheme).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": scheme.ID})
}

// chatMessageHandler answers a free-text question against the scheme catalog.
func chatMessageHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var schemes []models.Scheme
	if err := db.Find(&schemes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": chat.Reply(req.Message, schemes)})
}
