package refdata

// staticSource serves the built-in platform catalog. It stands in for the
// external reference-data service in deployments that have not wired one.
type staticSource struct {
	byCatalog map[Catalog][]Entity
	index     map[Catalog]map[string]*Entity
}

// NewStaticSource returns a Source backed by the embedded platform catalog.
func NewStaticSource() Source {
	s := &staticSource{
		byCatalog: map[Catalog][]Entity{
			CatalogGovernorates:        governorates,
			CatalogParties:             parties,
			CatalogUserTypes:           userTypes,
			CatalogCouncils:            councils,
			CatalogComplaintCategories: complaintCategories,
			CatalogComplaintStatuses:   complaintStatuses,
		},
		index: make(map[Catalog]map[string]*Entity),
	}
	for catalog, entities := range s.byCatalog {
		byID := make(map[string]*Entity, len(entities))
		for i := range entities {
			byID[entities[i].ID] = &entities[i]
		}
		s.index[catalog] = byID
	}
	return s
}

func (s *staticSource) Lookup(catalog Catalog, id string) (*Entity, bool) {
	entity, ok := s.index[catalog][id]
	return entity, ok
}

func (s *staticSource) List(catalog Catalog) []Entity {
	return s.byCatalog[catalog]
}

// The 27 Egyptian governorates, keyed by code.
var governorates = []Entity{
	{ID: "CAI", Name: "Cairo", Attributes: map[string]string{"name_ar": "القاهرة"}},
	{ID: "GIZ", Name: "Giza", Attributes: map[string]string{"name_ar": "الجيزة"}},
	{ID: "ALX", Name: "Alexandria", Attributes: map[string]string{"name_ar": "الإسكندرية"}},
	{ID: "DAK", Name: "Dakahlia", Attributes: map[string]string{"name_ar": "الدقهلية"}},
	{ID: "RSS", Name: "Red Sea", Attributes: map[string]string{"name_ar": "البحر الأحمر"}},
	{ID: "BEH", Name: "Beheira", Attributes: map[string]string{"name_ar": "البحيرة"}},
	{ID: "FAY", Name: "Fayoum", Attributes: map[string]string{"name_ar": "الفيوم"}},
	{ID: "GHR", Name: "Gharbia", Attributes: map[string]string{"name_ar": "الغربية"}},
	{ID: "ISM", Name: "Ismailia", Attributes: map[string]string{"name_ar": "الإسماعيلية"}},
	{ID: "MNF", Name: "Monufia", Attributes: map[string]string{"name_ar": "المنوفية"}},
	{ID: "MNY", Name: "Minya", Attributes: map[string]string{"name_ar": "المنيا"}},
	{ID: "QLY", Name: "Qalyubia", Attributes: map[string]string{"name_ar": "القليوبية"}},
	{ID: "WAD", Name: "New Valley", Attributes: map[string]string{"name_ar": "الوادي الجديد"}},
	{ID: "NSI", Name: "North Sinai", Attributes: map[string]string{"name_ar": "شمال سيناء"}},
	{ID: "SSI", Name: "South Sinai", Attributes: map[string]string{"name_ar": "جنوب سيناء"}},
	{ID: "SHR", Name: "Sharqia", Attributes: map[string]string{"name_ar": "الشرقية"}},
	{ID: "SOH", Name: "Sohag", Attributes: map[string]string{"name_ar": "سوهاج"}},
	{ID: "SUZ", Name: "Suez", Attributes: map[string]string{"name_ar": "السويس"}},
	{ID: "ASW", Name: "Aswan", Attributes: map[string]string{"name_ar": "أسوان"}},
	{ID: "ASY", Name: "Asyut", Attributes: map[string]string{"name_ar": "أسيوط"}},
	{ID: "BNS", Name: "Beni Suef", Attributes: map[string]string{"name_ar": "بني سويف"}},
	{ID: "PTS", Name: "Port Said", Attributes: map[string]string{"name_ar": "بورسعيد"}},
	{ID: "DAM", Name: "Damietta", Attributes: map[string]string{"name_ar": "دمياط"}},
	{ID: "KFS", Name: "Kafr El Sheikh", Attributes: map[string]string{"name_ar": "كفر الشيخ"}},
	{ID: "MAT", Name: "Matrouh", Attributes: map[string]string{"name_ar": "مطروح"}},
	{ID: "LUX", Name: "Luxor", Attributes: map[string]string{"name_ar": "الأقصر"}},
	{ID: "QEN", Name: "Qena", Attributes: map[string]string{"name_ar": "قنا"}},
}

// Political parties recognized by the platform.
var parties = []Entity{
	{ID: "wafd", Name: "Al-Wafd Party", Attributes: map[string]string{"name_ar": "حزب الوفد"}},
	{ID: "ndp", Name: "National Democratic Party", Attributes: map[string]string{"name_ar": "الحزب الوطني الديمقراطي"}},
	{ID: "ghad", Name: "Al-Ghad Party", Attributes: map[string]string{"name_ar": "حزب الغد"}},
	{ID: "tagammu", Name: "National Progressive Unionist Party", Attributes: map[string]string{"name_ar": "حزب التجمع الوطني التقدمي الوحدوي"}},
	{ID: "nasserist", Name: "Nasserist Party", Attributes: map[string]string{"name_ar": "حزب الناصري"}},
	{ID: "karama", Name: "Al-Karama Party", Attributes: map[string]string{"name_ar": "حزب الكرامة"}},
	{ID: "wasat", Name: "New Wasat Party", Attributes: map[string]string{"name_ar": "حزب الوسط الجديد"}},
	{ID: "horreya", Name: "Egyptian Freedom Party", Attributes: map[string]string{"name_ar": "حزب الحرية المصري"}},
	{ID: "free-egyptians", Name: "Free Egyptians Party", Attributes: map[string]string{"name_ar": "حزب المصريين الأحرار"}},
	{ID: "nour", Name: "Al-Nour Party", Attributes: map[string]string{"name_ar": "حزب النور"}},
	{ID: "bena-tanmeya", Name: "Building and Development Party", Attributes: map[string]string{"name_ar": "حزب البناء والتنمية"}},
	{ID: "eslah-tanmeya", Name: "Reform and Development Party", Attributes: map[string]string{"name_ar": "حزب الإصلاح والتنمية"}},
	{ID: "mostaqbal-watan", Name: "Future of a Nation Party", Attributes: map[string]string{"name_ar": "حزب مستقبل وطن"}},
	{ID: "moatamar", Name: "Conference Party", Attributes: map[string]string{"name_ar": "حزب المؤتمر"}},
	{ID: "shaab-gomhoury", Name: "Republican People's Party", Attributes: map[string]string{"name_ar": "حزب الشعب الجمهوري"}},
	{ID: "independent", Name: "Independent", Attributes: map[string]string{"name_ar": "مستقل"}},
}

var userTypes = []Entity{
	{ID: "citizen", Name: "Citizen", Attributes: map[string]string{"name_ar": "مواطن"}},
	{ID: "candidate", Name: "Candidate", Attributes: map[string]string{"name_ar": "مرشح"}},
	{ID: "current_member", Name: "Current Member", Attributes: map[string]string{"name_ar": "عضو حالي"}},
	{ID: "admin", Name: "Admin", Attributes: map[string]string{"name_ar": "إدارة"}},
}

var councils = []Entity{
	{ID: "parliament", Name: "Parliament", Attributes: map[string]string{"name_ar": "مجلس النواب", "total_seats": "596", "term_years": "5"}},
	{ID: "senate", Name: "Senate", Attributes: map[string]string{"name_ar": "مجلس الشيوخ", "total_seats": "300", "term_years": "5"}},
}

var complaintCategories = []Entity{
	{ID: "infrastructure", Name: "Infrastructure", Attributes: map[string]string{"name_ar": "البنية التحتية"}},
	{ID: "health", Name: "Health", Attributes: map[string]string{"name_ar": "الصحة"}},
	{ID: "education", Name: "Education", Attributes: map[string]string{"name_ar": "التعليم"}},
	{ID: "security", Name: "Security", Attributes: map[string]string{"name_ar": "الأمن"}},
	{ID: "public_services", Name: "Public Services", Attributes: map[string]string{"name_ar": "الخدمات العامة"}},
	{ID: "transportation", Name: "Transportation", Attributes: map[string]string{"name_ar": "النقل والمواصلات"}},
	{ID: "environment", Name: "Environment", Attributes: map[string]string{"name_ar": "البيئة"}},
	{ID: "housing", Name: "Housing", Attributes: map[string]string{"name_ar": "الإسكان"}},
	{ID: "employment", Name: "Employment", Attributes: map[string]string{"name_ar": "العمل والتوظيف"}},
	{ID: "social_affairs", Name: "Social Affairs", Attributes: map[string]string{"name_ar": "الشؤون الاجتماعية"}},
	{ID: "other", Name: "Other", Attributes: map[string]string{"name_ar": "أخرى"}},
}

var complaintStatuses = []Entity{
	{ID: "pending", Name: "Pending", Attributes: map[string]string{"name_ar": "في الانتظار", "color": "#FFC107"}},
	{ID: "under_review", Name: "Under Review", Attributes: map[string]string{"name_ar": "قيد المراجعة", "color": "#17A2B8"}},
	{ID: "assigned", Name: "Assigned", Attributes: map[string]string{"name_ar": "تم التعيين", "color": "#007BFF"}},
	{ID: "resolved", Name: "Resolved", Attributes: map[string]string{"name_ar": "تم الحل", "color": "#28A745"}},
	{ID: "rejected", Name: "Rejected", Attributes: map[string]string{"name_ar": "مرفوضة", "color": "#DC3545"}},
}
