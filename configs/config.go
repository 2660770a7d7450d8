// config.go - Configuration loaded from environment variables

package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// Gemini AI Configuration
	GEMINI_API_KEY   string
	MODEL_NAME       = "gemini-2.0-flash"
	VOICE_MODEL_NAME = "gemini-2.0-flash"

	// Gemini Pricing Configuration (per 1M tokens in USD)
	GEMINI_INPUT_PRICE_PER_MILLION  = 0.10
	GEMINI_OUTPUT_PRICE_PER_MILLION = 0.40
	USD_TO_INR                      = 83.0

	// Client-side guard against the per-minute request quota
	GEMINI_RPM = 12

	// Server Configuration
	PORT            = "8080"
	UPLOAD_DIR      = "uploads"
	ALLOWED_ORIGINS = "*"

	// MongoDB Configuration (persistence is disabled when MONGO_URI is empty)
	MONGO_URI     string
	MONGO_DB_NAME = "spendlens"

	// Tesseract OCR engine
	TESSERACT_BIN  = "tesseract"
	TESSERACT_LANG = "eng"
	TESSDATA_DIR   string

	// Image preprocessing settings
	ENABLE_IMAGE_PREPROCESSING = true
	MAX_IMAGE_DIMENSION        = 2000

	// Upload size ceilings per artifact type (MB)
	MAX_IMAGE_MB = 10
	MAX_PDF_MB   = 15
	MAX_AUDIO_MB = 25

	// Scan dedupe cache TTL (minutes); 0 disables the cache
	SCAN_CACHE_TTL_MIN = 10

	// Quality tier thresholds. Heuristic tuning constants carried over from
	// the original calibration; override via env rather than editing code.
	IMAGE_POOR_CONFIDENCE = 50
	IMAGE_FAIR_CONFIDENCE = 60
	IMAGE_POOR_WORDS      = 5
	IMAGE_FAIR_WORDS      = 10
	PDF_POOR_CONFIDENCE   = 50
	PDF_FAIR_CONFIDENCE   = 65
	PDF_POOR_WORDS        = 10
	PDF_FAIR_WORDS        = 15

	// PDF confidence synthesis weights
	PDF_BASE_CONFIDENCE = 40
	PDF_LENGTH_BONUS    = 10
	PDF_SIGNAL_BONUS    = 5
)

// LoadConfig loads configuration from environment variables
func LoadConfig() {
	// Load .env file if exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Required: Gemini API Key
	GEMINI_API_KEY = getEnv("GEMINI_API_KEY", "")
	if GEMINI_API_KEY == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}

	MODEL_NAME = getEnv("MODEL_NAME", MODEL_NAME)
	VOICE_MODEL_NAME = getEnv("VOICE_MODEL_NAME", VOICE_MODEL_NAME)

	GEMINI_INPUT_PRICE_PER_MILLION = getEnvFloat("GEMINI_INPUT_PRICE_PER_MILLION", GEMINI_INPUT_PRICE_PER_MILLION)
	GEMINI_OUTPUT_PRICE_PER_MILLION = getEnvFloat("GEMINI_OUTPUT_PRICE_PER_MILLION", GEMINI_OUTPUT_PRICE_PER_MILLION)
	USD_TO_INR = getEnvFloat("USD_TO_INR", USD_TO_INR)
	GEMINI_RPM = getEnvInt("GEMINI_RPM", GEMINI_RPM)

	PORT = getEnv("PORT", PORT)
	UPLOAD_DIR = getEnv("UPLOAD_DIR", UPLOAD_DIR)
	ALLOWED_ORIGINS = getEnv("ALLOWED_ORIGINS", ALLOWED_ORIGINS)

	MONGO_URI = getEnv("MONGO_URI", "")
	MONGO_DB_NAME = getEnv("MONGO_DB_NAME", MONGO_DB_NAME)

	TESSERACT_BIN = getEnv("TESSERACT_BIN", TESSERACT_BIN)
	TESSERACT_LANG = getEnv("TESSERACT_LANG", TESSERACT_LANG)
	TESSDATA_DIR = getEnv("TESSDATA_DIR", "")

	ENABLE_IMAGE_PREPROCESSING = getEnvBool("ENABLE_IMAGE_PREPROCESSING", ENABLE_IMAGE_PREPROCESSING)
	MAX_IMAGE_DIMENSION = getEnvInt("MAX_IMAGE_DIMENSION", MAX_IMAGE_DIMENSION)

	MAX_IMAGE_MB = getEnvInt("MAX_IMAGE_MB", MAX_IMAGE_MB)
	MAX_PDF_MB = getEnvInt("MAX_PDF_MB", MAX_PDF_MB)
	MAX_AUDIO_MB = getEnvInt("MAX_AUDIO_MB", MAX_AUDIO_MB)

	SCAN_CACHE_TTL_MIN = getEnvInt("SCAN_CACHE_TTL_MIN", SCAN_CACHE_TTL_MIN)

	IMAGE_POOR_CONFIDENCE = getEnvInt("IMAGE_POOR_CONFIDENCE", IMAGE_POOR_CONFIDENCE)
	IMAGE_FAIR_CONFIDENCE = getEnvInt("IMAGE_FAIR_CONFIDENCE", IMAGE_FAIR_CONFIDENCE)
	IMAGE_POOR_WORDS = getEnvInt("IMAGE_POOR_WORDS", IMAGE_POOR_WORDS)
	IMAGE_FAIR_WORDS = getEnvInt("IMAGE_FAIR_WORDS", IMAGE_FAIR_WORDS)
	PDF_POOR_CONFIDENCE = getEnvInt("PDF_POOR_CONFIDENCE", PDF_POOR_CONFIDENCE)
	PDF_FAIR_CONFIDENCE = getEnvInt("PDF_FAIR_CONFIDENCE", PDF_FAIR_CONFIDENCE)
	PDF_POOR_WORDS = getEnvInt("PDF_POOR_WORDS", PDF_POOR_WORDS)
	PDF_FAIR_WORDS = getEnvInt("PDF_FAIR_WORDS", PDF_FAIR_WORDS)

	PDF_BASE_CONFIDENCE = getEnvInt("PDF_BASE_CONFIDENCE", PDF_BASE_CONFIDENCE)
	PDF_LENGTH_BONUS = getEnvInt("PDF_LENGTH_BONUS", PDF_LENGTH_BONUS)
	PDF_SIGNAL_BONUS = getEnvInt("PDF_SIGNAL_BONUS", PDF_SIGNAL_BONUS)

	log.Println("Configuration loaded successfully")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
