package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"theracare/internal/config"
	"theracare/internal/database"
	"theracare/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM mpesa_transactions")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM feedback")
	db.Exec("DELETE FROM diagnostics")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM available_time_slots")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		FullName:     "Site Administrator",
		Email:        "admin@theracare.co.ke",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@theracare.co.ke / admin123")

	specializations := []string{"Cognitive Behavioural Therapy", "Family Therapy", "Trauma Counselling"}
	therapists := []domain.User{}
	for i, spec := range specializations {
		hash, _ := bcrypt.GenerateFromPassword([]byte("therapist123"), bcrypt.DefaultCost)
		therapist := domain.User{
			FullName:        fmt.Sprintf("Dr. Therapist %d", i+1),
			Email:           fmt.Sprintf("therapist%d@theracare.co.ke", i+1),
			PasswordHash:    string(hash),
			ContactPhone:    fmt.Sprintf("+2547112233%02d", i+10),
			Role:            domain.RoleTherapist,
			Specialization:  spec,
			ExperienceYears: 3 + rand.Intn(15),
		}
		db.Create(&therapist)
		therapists = append(therapists, therapist)
	}

	patients := []domain.User{}
	patientEmails := []string{"wanjiku@gmail.com", "otieno@yahoo.com", "njeri@outlook.com"}
	for i, email := range patientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("patient123"), bcrypt.DefaultCost)
		patient := domain.User{
			FullName:     fmt.Sprintf("Patient %d", i+1),
			Email:        email,
			PasswordHash: string(hash),
			ContactPhone: fmt.Sprintf("+2547445566%02d", i+20),
			Address:      fmt.Sprintf("Plot %d, Ngong Road, Nairobi", i+1),
			Role:         domain.RolePatient,
		}
		db.Create(&patient)
		patients = append(patients, patient)
	}

	// ================== TIME SLOTS ==================
	log.Println("Creating time slots...")
	blocks := [][2]string{
		{"08:00", "10:00"},
		{"10:00", "12:00"},
		{"12:00", "14:00"},
		{"14:00", "16:00"},
		{"16:00", "18:00"},
	}
	slots := []domain.TimeSlot{}
	for _, therapist := range therapists {
		for day := 1; day <= 5; day++ {
			date := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, day)
			for _, b := range blocks {
				slot := domain.TimeSlot{
					TherapistID: therapist.ID,
					Date:        date,
					StartTime:   b[0],
					EndTime:     b[1],
				}
				db.Create(&slot)
				slots = append(slots, slot)
			}
		}
	}
	log.Printf("Created %d time slots", len(slots))

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	statuses := []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}
	bookings := []domain.Booking{}
	for i := 0; i < 6; i++ {
		slot := slots[i*4]
		patient := patients[i%len(patients)]

		booking := domain.Booking{
			UserID:        patient.ID,
			TherapistID:   slot.TherapistID,
			SlotID:        slot.ID,
			BookingStatus: statuses[rand.Intn(len(statuses))],
		}
		db.Create(&booking)
		// the slot flag always follows the active booking
		db.Model(&domain.TimeSlot{}).Where("id = ?", slot.ID).Update("is_booked", true)
		bookings = append(bookings, booking)
	}

	// ================== SESSIONS & FEEDBACK ==================
	log.Println("Creating sessions, diagnostics and feedback...")
	for i, booking := range bookings[:3] {
		session := domain.Session{
			BookingID:    booking.ID,
			SessionNotes: fmt.Sprintf("Initial assessment for booking %d. Patient responsive.", booking.ID),
		}
		db.Create(&session)

		db.Create(&domain.Diagnostic{
			SessionID:       session.ID,
			Diagnosis:       "Generalised anxiety, mild",
			Recommendations: "Weekly sessions for six weeks, breathing exercises daily.",
		})

		rating := 4 + i%2
		db.Create(&domain.Feedback{
			SessionID: session.ID,
			UserID:    booking.UserID,
			Rating:    &rating,
			Comments:  "Felt heard and supported.",
		})
	}

	// ================== MESSAGES ==================
	log.Println("Creating messages...")
	for i, patient := range patients {
		therapist := therapists[i%len(therapists)]
		db.Create(&domain.Message{
			SenderID:   patient.ID,
			ReceiverID: therapist.ID,
			Content:    "Hello doctor, looking forward to our session.",
			Status:     domain.MessageSent,
		})
		db.Create(&domain.Message{
			SenderID:   therapist.ID,
			ReceiverID: patient.ID,
			Content:    "See you then. Please arrive ten minutes early.",
			Status:     domain.MessageRead,
			IsRead:     true,
		})
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@theracare.co.ke / admin123")
	log.Println("Therapists: therapist1..3@theracare.co.ke / therapist123")
	log.Println("Patients: wanjiku@gmail.com, otieno@yahoo.com, njeri@outlook.com / patient123")
}
