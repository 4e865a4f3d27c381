package appointment

import "carelink/models"

// DefaultSlots is the demo appointment table: three slots for each of
// five specialties, so a listing always offers a choice per health
// concern.
func DefaultSlots() []models.Slot {
	return []models.Slot{
		// General Medicine
		{Date: "2025-07-29", Day: "Tuesday", Time: "9:45 AM", Doctor: "Dr. Emily Rodriguez", Specialty: "General Medicine", Description: "Annual checkups, general health concerns, routine care", Available: true},
		{Date: "2025-08-05", Day: "Tuesday", Time: "10:30 AM", Doctor: "Dr. David Thompson", Specialty: "General Medicine", Description: "Annual checkups, general health concerns, routine care", Available: true},
		{Date: "2025-08-13", Day: "Wednesday", Time: "2:00 PM", Doctor: "Dr. Sarah Johnson", Specialty: "General Medicine", Description: "Annual checkups, general health concerns, routine care", Available: true},

		// Cardiology
		{Date: "2025-07-30", Day: "Wednesday", Time: "11:15 AM", Doctor: "Dr. Michael Chen", Specialty: "Cardiology", Description: "Heart conditions, chest pain, blood pressure, arrhythmia", Available: true},
		{Date: "2025-08-08", Day: "Friday", Time: "3:30 PM", Doctor: "Dr. Lisa Park", Specialty: "Cardiology", Description: "Heart conditions, chest pain, blood pressure, arrhythmia", Available: true},
		{Date: "2025-08-15", Day: "Friday", Time: "1:00 PM", Doctor: "Dr. James Anderson", Specialty: "Cardiology", Description: "Heart conditions, chest pain, blood pressure, arrhythmia", Available: true},

		// Internal Medicine
		{Date: "2025-07-31", Day: "Thursday", Time: "10:00 AM", Doctor: "Dr. Maria Garcia", Specialty: "Internal Medicine", Description: "Complex medical conditions, chronic diseases, comprehensive care", Available: true},
		{Date: "2025-08-06", Day: "Wednesday", Time: "4:45 PM", Doctor: "Dr. Robert Wilson", Specialty: "Internal Medicine", Description: "Complex medical conditions, chronic diseases, comprehensive care", Available: true},
		{Date: "2025-08-12", Day: "Tuesday", Time: "3:15 PM", Doctor: "Dr. Thomas Brown", Specialty: "Internal Medicine", Description: "Complex medical conditions, chronic diseases, comprehensive care", Available: true},

		// Geriatrics
		{Date: "2025-08-01", Day: "Friday", Time: "9:00 AM", Doctor: "Dr. Jennifer Lee", Specialty: "Geriatrics", Description: "Elderly care, age-related conditions, mobility issues, memory concerns", Available: true},
		{Date: "2025-08-07", Day: "Thursday", Time: "2:30 PM", Doctor: "Dr. Patricia Martinez", Specialty: "Geriatrics", Description: "Elderly care, age-related conditions, mobility issues, memory concerns", Available: true},
		{Date: "2025-08-14", Day: "Thursday", Time: "11:00 AM", Doctor: "Dr. William Davis", Specialty: "Geriatrics", Description: "Elderly care, age-related conditions, mobility issues, memory concerns", Available: true},

		// Neurology
		{Date: "2025-07-29", Day: "Monday", Time: "1:45 PM", Doctor: "Dr. Amanda White", Specialty: "Neurology", Description: "Headaches, dizziness, memory problems, nerve issues, stroke follow-up", Available: true},
		{Date: "2025-08-04", Day: "Monday", Time: "3:30 PM", Doctor: "Dr. Christopher Taylor", Specialty: "Neurology", Description: "Headaches, dizziness, memory problems, nerve issues, stroke follow-up", Available: true},
		{Date: "2025-08-11", Day: "Monday", Time: "10:00 AM", Doctor: "Dr. Kevin Miller", Specialty: "Neurology", Description: "Headaches, dizziness, memory problems, nerve issues, stroke follow-up", Available: true},
	}
}
