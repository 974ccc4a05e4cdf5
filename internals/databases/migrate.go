package database

import (
	"log"

	attendanceModel "attendly_backend/internals/features/attendance/events/model"
	classModel "attendly_backend/internals/features/timetable/classes/model"
	subjectModel "attendly_backend/internals/features/timetable/subjects/model"
	timetableModel "attendly_backend/internals/features/timetable/timetables/model"
	userModel "attendly_backend/internals/features/users/user/model"
)

// MigrateSchemas keeps the tables in sync on boot. gen_random_uuid() needs
// pgcrypto, so that extension is ensured first.
func MigrateSchemas() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("⚠️ pgcrypto extension: %v", err)
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&subjectModel.SubjectRegistryModel{},
		&timetableModel.TimetableModel{},
		&classModel.ClassModel{},
		&attendanceModel.AttendanceEventModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ Schemas migrated.")
}
