package services

// Services defined in this package:
// - AuthService: Handles admin login, token refresh and profile lookup
// - CourseService: Handles catalog course management
// - FolderService: Handles catalog folder management
// - UniversityService: Handles partner university pages
// - EditorService: Handles course selection editor sessions
// - TeamService, TestimonialService, ServiceService: Handle site content
// - InquiryService: Handles website contact inquiries
// - DashboardService: Aggregates the admin landing page numbers
// - SettingsService: Handles site settings and exchange rates
