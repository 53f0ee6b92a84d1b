package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Seeds the community database with demo activities, rewards and the
// hobby catalog. Run the server once first so AutoMigrate creates the tables.

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

type activitySeed struct {
	title   [4]string // en, zh, ms, ta
	desc    [4]string
	loc     [4]string
	date    string
	timeStr string
	maxAtt  interface{}
	points  int
}

func main() {
	config := loadConfig()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	// Confirm
	fmt.Print("\nWARNING: This operation will CLEAR tables [activity, reward, hobby] and re-seed demo data!\n")
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=0")
	for _, table := range []string{"activity", "reward", "hobby"} {
		fmt.Printf("Clearing table %s... ", table)
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Println("Success")
		}
		_, _ = db.Exec(fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table))
	}
	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=1")

	seedActivities(db)
	seedRewards(db)
	seedHobbies(db)

	fmt.Println("\nSeeding completed!")
}

func seedActivities(db *sql.DB) {
	fmt.Println("\nSeeding activities...")

	activities := []activitySeed{
		{
			title:   [4]string{"Morning Tai Chi", "晨间太极", "Tai Chi Pagi", "காலை தை சி"},
			desc:    [4]string{"Gentle exercise for all ages at the plaza", "适合所有年龄的柔和运动", "Senaman lembut untuk semua peringkat umur", "அனைத்து வயதினருக்கும் மென்மையான உடற்பயிற்சி"},
			loc:     [4]string{"Keat Hong CC Plaza", "吉丰民众俱乐部广场", "Plaza CC Keat Hong", "கீட் ஹாங் சிசி பிளாசா"},
			date:    "2026-09-05",
			timeStr: "07:30",
			maxAtt:  30,
			points:  20,
		},
		{
			title:   [4]string{"Community Kopi Talk", "社区咖啡座谈", "Bual Kopi Komuniti", "சமூக கோப்பி உரையாடல்"},
			desc:    [4]string{"Meet your neighbours over free kopi and kaya toast", "与邻居一起享用免费咖啡和咖椰吐司", "Berkenalan dengan jiran sambil menikmati kopi percuma", "இலவச கோப்பியுடன் அண்டை வீட்டாரை சந்திக்கவும்"},
			loc:     [4]string{"Void Deck Blk 815", "第815座组屋底层", "Dek Kosong Blk 815", "பிளாக் 815 கீழ்தளம்"},
			date:    "2026-09-12",
			timeStr: "10:00",
			maxAtt:  nil,
			points:  15,
		},
		{
			title:   [4]string{"Gardening Workshop", "园艺工作坊", "Bengkel Berkebun", "தோட்டக்கலை பட்டறை"},
			desc:    [4]string{"Learn to grow herbs in the community garden", "学习在社区花园种植香草", "Belajar menanam herba di taman komuniti", "சமூக தோட்டத்தில் மூலிகை வளர்க்க கற்றுக்கொள்ளுங்கள்"},
			loc:     [4]string{"Keat Hong Community Garden", "吉丰社区花园", "Taman Komuniti Keat Hong", "கீட் ஹாங் சமூக தோட்டம்"},
			date:    "2026-09-19",
			timeStr: "16:00",
			maxAtt:  20,
			points:  25,
		},
	}

	stmt := `INSERT INTO activity
		(title, title_chinese, title_malay, title_tamil,
		 description, description_chinese, description_malay, description_tamil,
		 location, location_chinese, location_malay, location_tamil,
		 activity_date, activity_time, max_attendees, points_reward, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	for _, a := range activities {
		_, err := db.Exec(stmt,
			a.title[0], a.title[1], a.title[2], a.title[3],
			a.desc[0], a.desc[1], a.desc[2], a.desc[3],
			a.loc[0], a.loc[1], a.loc[2], a.loc[3],
			a.date, a.timeStr, a.maxAtt, a.points,
		)
		if err != nil {
			fmt.Printf("  %s: Failed: %v\n", a.title[0], err)
		} else {
			fmt.Printf("  %s: OK\n", a.title[0])
		}
	}
}

func seedRewards(db *sql.DB) {
	fmt.Println("\nSeeding rewards...")

	stmt := `INSERT INTO reward
		(title, title_chinese, title_malay, title_tamil,
		 description, description_chinese, description_malay, description_tamil,
		 points_cost, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1, NOW())`

	rewards := [][9]interface{}{
		{"$5 NTUC Voucher", "5新元职总超市礼券", "Baucar NTUC $5", "$5 NTUC வவுச்சர்",
			"Redeemable at any NTUC FairPrice outlet", "可在任何职总平价超市使用", "Boleh ditebus di mana-mana NTUC FairPrice", "எந்த NTUC FairPrice கடையிலும் பயன்படுத்தலாம்", 100},
		{"Free Kopi Set", "免费咖啡套餐", "Set Kopi Percuma", "இலவச கோப்பி செட்",
			"Kopi and kaya toast at the CC canteen", "民众俱乐部食堂的咖啡和咖椰吐司", "Kopi dan roti kaya di kantin CC", "சிசி உணவகத்தில் கோப்பியும் காயா டோஸ்டும்", 50},
		{"Badminton Court Booking", "羽毛球场预订", "Tempahan Gelanggang Badminton", "பூப்பந்து மைதான முன்பதிவு",
			"One hour court booking at the sports hall", "体育馆一小时场地预订", "Tempahan gelanggang satu jam di dewan sukan", "விளையாட்டு அரங்கில் ஒரு மணி நேர முன்பதிவு", 150},
	}

	for _, r := range rewards {
		_, err := db.Exec(stmt, r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7], r[8])
		if err != nil {
			fmt.Printf("  %v: Failed: %v\n", r[0], err)
		} else {
			fmt.Printf("  %v: OK\n", r[0])
		}
	}
}

func seedHobbies(db *sql.DB) {
	fmt.Println("\nSeeding hobby catalog...")

	hobbies := [][2]string{
		{"Gardening", "🌱"},
		{"Cooking", "🍳"},
		{"Badminton", "🏸"},
		{"Tai Chi", "🥋"},
		{"Mahjong", "🀄"},
		{"Photography", "📷"},
		{"Cycling", "🚴"},
		{"Karaoke", "🎤"},
		{"Chess", "♟️"},
		{"Reading", "📚"},
	}

	for _, h := range hobbies {
		_, err := db.Exec("INSERT INTO hobby (name, icon, created_at) VALUES (?, ?, NOW())", h[0], h[1])
		if err != nil {
			fmt.Printf("  %s: Failed: %v\n", h[0], err)
		} else {
			fmt.Printf("  %s: OK\n", h[0])
		}
	}
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		fmt.Println("Config file not found, using default config")
		return &Config{Database: struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
			Database string `yaml:"database"`
			Charset  string `yaml:"charset"`
		}{
			Host:     "localhost",
			Port:     3306,
			Username: "jiome_user",
			Password: "jiome_pass",
			Database: "jiome_keathong",
			Charset:  "utf8mb4",
		}}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Config file parsing failed: %v", err)
	}
	return &cfg
}
