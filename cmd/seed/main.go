// Command seed wipes the database and loads the starter content: an admin and
// a sample user, the current roster, upcoming matches, shop products, news and
// sponsors.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
)

func main() {
	_ = godotenv.Load()

	db := openDatabase()

	log.Println("🧹 Dropping tables...")
	if err := db.Migrator().DropTable(
		&models.OrderItem{}, &models.Order{},
		&models.CartItem{}, &models.Cart{},
		&models.Product{}, &models.Player{}, &models.News{},
		&models.Match{}, &models.Sponsor{}, &models.User{},
	); err != nil {
		log.Fatalf("❌ Drop failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Player{}, &models.News{},
		&models.Match{}, &models.Sponsor{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	seedUsers(db)
	seedNews(db)
	seedPlayers(db)
	seedMatches(db)
	seedProducts(db)
	seedSponsors(db)

	log.Println("✅ Seed complete")
}

func openDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	return db
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Hash failed: %v", err)
	}
	return string(hash)
}

func seedUsers(db *gorm.DB) {
	users := []models.User{
		{Username: "admin", Email: "admin@teste.com", PasswordHash: mustHash("123"), IsAdmin: true},
		{Username: "user", Email: "user@teste.com", PasswordHash: mustHash("123456")},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("❌ Seeding users failed: %v", err)
	}
}

func seedNews(db *gorm.DB) {
	news := []models.News{
		{
			Title:       "Novo jogador entra para o time!",
			Description: "O novo prodígio chega para elevar o nível competitivo.",
			ImageURL:    "/uploads/news/test_news_1.jpg",
			Link:        "#",
		},
		{
			Title:       "Time garante vaga no campeonato internacional",
			Description: "Após uma série incrível, garantimos nossa vaga.",
			ImageURL:    "/uploads/news/test_news_2.jpg",
			Link:        "#",
		},
		{
			Title:       "Line-up reformulada para a próxima temporada",
			Description: "Mudanças estratégicas visando melhores resultados.",
			ImageURL:    "/uploads/news/test_news_3.jpg",
			Link:        "#",
		},
	}
	if err := db.Create(&news).Error; err != nil {
		log.Fatalf("❌ Seeding news failed: %v", err)
	}
}

func seedPlayers(db *gorm.DB) {
	players := []models.Player{
		{Name: "Álef", Role: "Player", Game: "Clash Royale", ImageURL: "/uploads/players/alef.jpg", Twitter: "alef_cr"},
		{Name: "Cosern", Role: "Player", Game: "Clash Royale", ImageURL: "/uploads/players/cosern.jpg"},
		{Name: "PhzzX", Role: "Player", Game: "Clash Royale", ImageURL: "/uploads/players/phzzx.jpg"},
		{Name: "Ranielison", Role: "Player", Game: "Clash Royale", ImageURL: "/uploads/players/ranielison.jpg"},
		{Name: "Sigano", Role: "Player", Game: "Clash Royale", ImageURL: "/uploads/players/sigano.jpg"},
	}
	if err := db.Create(&players).Error; err != nil {
		log.Fatalf("❌ Seeding players failed: %v", err)
	}
}

func seedMatches(db *gorm.DB) {
	matches := []models.Match{
		{Tournament: "CBLOL 2025 - Semana 1", Opponent: "Red Canids", StartsAt: time.Date(2025, 3, 10, 18, 0, 0, 0, time.Local)},
		{Tournament: "CS Major Qualifier", Opponent: "MIBR", StartsAt: time.Date(2025, 3, 14, 20, 30, 0, 0, time.Local)},
		{Tournament: "Valorant Masters", Opponent: "LOUD", StartsAt: time.Date(2025, 3, 22, 19, 0, 0, 0, time.Local)},
	}
	if err := db.Create(&matches).Error; err != nil {
		log.Fatalf("❌ Seeding matches failed: %v", err)
	}
}

func seedProducts(db *gorm.DB) {
	products := []models.Product{
		{Name: "Camiseta Oficial 2025", Price: 149.90, ImageURL: "/uploads/products/camiseta_oficial.jpg", Tag: "NOVO"},
		{Name: "Moletom Premium", Price: 249.90, ImageURL: "/uploads/products/moletom_premium.jpg", Tag: "BEST SELLER"},
		{Name: "Boné E-Sports", Price: 89.90, ImageURL: "/uploads/products/bone_esports.jpg"},
		{Name: "Mousepad XL", Price: 119.90, ImageURL: "/uploads/products/mousepad_xl.jpg"},
		{Name: "Jersey Pro Player", Price: 199.90, ImageURL: "/uploads/products/jersey_pro.jpg"},
		{Name: "Adesivo Oficial", Price: 19.90, ImageURL: "/uploads/products/adesivo_oficial.jpg"},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("❌ Seeding products failed: %v", err)
	}
}

func seedSponsors(db *gorm.DB) {
	sponsors := []models.Sponsor{
		{Name: "Banco do Brasil", LogoURL: "/uploads/sponsors/bb_logo.png", Website: "https://www.bancodobrasil.com.br"},
		{Name: "Farmácia Pague Menos", LogoURL: "/uploads/sponsors/paguemenos_logo.png", Website: "https://www.paguemenos.com.br"},
		{Name: "Pepsi", LogoURL: "/uploads/sponsors/pepsi_logo.png", Website: "https://www.pepsi.com"},
		{Name: "AMD", LogoURL: "/uploads/sponsors/amd_logo.png", Website: "https://www.amd.com"},
		{Name: "Cup Noodles", LogoURL: "/uploads/sponsors/cupnoodles_logo.png", Website: "https://www.cupnoodles.com.br"},
	}
	if err := db.Create(&sponsors).Error; err != nil {
		log.Fatalf("❌ Seeding sponsors failed: %v", err)
	}
}
