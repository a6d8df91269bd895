package template

import "lawmate/pkg/domain"

// catalog is the closed set of document templates. Bodies are Lebanese legal
// boilerplate; the renderer fills {{identifier}} tokens and leaves unknown
// tokens visible so an incomplete draft is obvious to the reader.
var catalog = []Template{
	{
		ID: "ikrar",
		Names: map[domain.Language]string{
			domain.LanguageArabic:  "إقرار عدلي",
			domain.LanguageEnglish: "Notarized Affidavit",
			domain.LanguageFrench:  "Déclaration notariée",
		},
		Category: CategoryCivil,
		Body: `إقرار عدلي

أنا الموقع أدناه {{partyName}}، حامل/ة بطاقة هوية رقم {{idNumber}}
أقر وأتعهد بالآتي:

{{statementContent}}

وأتحمل كامل المسؤولية القانونية عن صحة هذا الإقرار.

الموقع: {{signature}}
التاريخ: {{date}}
المكان: {{location}}

بحضور:
الشاهد الأول: {{witness1}}
الشاهد الثاني: {{witness2}}

ختم النقابة: ___________
توقيع المحضر: ___________`,
		RequiredFields: []string{"partyName", "idNumber", "statementContent", "location", "witness1", "witness2"},
	},
	{
		ID: "rental",
		Names: map[domain.Language]string{
			domain.LanguageArabic:  "عقد إيجار",
			domain.LanguageEnglish: "Rental Agreement",
			domain.LanguageFrench:  "Contrat de location",
		},
		Category: CategoryCivil,
		Body: `عقد إيجار

الفريق الأول (المؤجر): {{landlordName}}، بطاقة هوية رقم {{landlordId}}
الفريق الثاني (المستأجر): {{tenantName}}، بطاقة هوية رقم {{tenantId}}

المأجور: {{propertyDescription}}
العنوان: {{propertyAddress}}

بدل الإيجار السنوي: {{annualRent}} ليرة لبنانية
مدة الإيجار: {{leaseDuration}}
تاريخ بدء العقد: {{startDate}}

الشروط الخاصة:
{{specialConditions}}

حرر في: {{location}}
التاريخ: {{date}}

توقيع المؤجر: ___________
توقيع المستأجر: ___________`,
		RequiredFields: []string{"landlordName", "tenantName", "propertyAddress", "annualRent", "leaseDuration"},
	},
	{
		ID: "employment",
		Names: map[domain.Language]string{
			domain.LanguageArabic:  "عقد عمل",
			domain.LanguageEnglish: "Employment Contract",
			domain.LanguageFrench:  "Contrat de travail",
		},
		Category: CategoryCommercial,
		Body: `عقد عمل

صاحب العمل: {{employerName}}، سجل تجاري رقم {{commercialRegister}}
الأجير: {{employeeName}}، بطاقة هوية رقم {{employeeId}}

طبيعة العمل: {{jobDescription}}
مكان العمل: {{workLocation}}
الراتب الشهري: {{monthlySalary}} ليرة لبنانية
فترة التجربة: {{probationPeriod}}
تاريخ المباشرة: {{startDate}}

شروط الإنهاء:
{{terminationConditions}}

حرر في: {{location}}
التاريخ: {{date}}

توقيع صاحب العمل: ___________
توقيع الأجير: ___________`,
		RequiredFields: []string{"employerName", "employeeName", "jobDescription", "monthlySalary", "probationPeriod"},
	},
	{
		ID: "marriage",
		Names: map[domain.Language]string{
			domain.LanguageArabic:  "عقد زواج شرعي",
			domain.LanguageEnglish: "Islamic Marriage Contract",
			domain.LanguageFrench:  "Contrat de mariage islamique",
		},
		Category: CategoryPersonal,
		Body: `عقد زواج شرعي

بسم الله الرحمن الرحيم

تم عقد القران بين:
الزوج: {{groomName}}، ابن {{groomFather}}، مواليد {{groomBirthDate}}
الزوجة: {{brideName}}، ابنة {{brideFather}}، مواليد {{brideBirthDate}}

المهر المتفق عليه: {{dowry}} ليرة لبنانية
المهر المعجل: {{advancedDowry}} ليرة لبنانية
المهر المؤجل: {{deferredDowry}} ليرة لبنانية

الشروط الخاصة:
{{specialConditions}}

بحضور الشهود:
١. {{witness1}}، بطاقة هوية: {{witness1Id}}
٢. {{witness2}}، بطاقة هوية: {{witness2Id}}

ولي أمر الزوجة: {{guardian}}

تاريخ العقد: {{contractDate}}
مكان العقد: {{contractLocation}}

توقيع الزوج: ___________
توقيع الزوجة: ___________
توقيع ولي الأمر: ___________
خاتم المأذون الشرعي: ___________`,
		RequiredFields: []string{"groomName", "groomFather", "brideName", "brideFather", "dowry", "witness1", "witness2", "guardian"},
	},
	{
		ID: "taxAppeal",
		Names: map[domain.Language]string{
			domain.LanguageArabic:  "طعن ضريبي",
			domain.LanguageEnglish: "Tax Appeal",
			domain.LanguageFrench:  "Appel fiscal",
		},
		Category: CategoryTax,
		Body: `طعن ضريبي

إلى: رئيس لجنة الطعون الضريبية
الموضوع: طعن في التكليف الضريبي رقم {{taxAssessmentNumber}}

أتشرف أن أتقدم إليكم بطعن في التكليف الضريبي المذكور أعلاه للأسباب التالية:

معلومات الطاعن:
الاسم: {{taxpayerName}}
رقم التسجيل الضريبي: {{taxId}}
العنوان: {{address}}
الهاتف: {{phone}}

تفاصيل الطعن:
رقم التكليف: {{taxAssessmentNumber}}
تاريخ التكليف: {{assessmentDate}}
المبلغ المطعون فيه: {{disputedAmount}} ليرة لبنانية

أسباب الطعن:
{{appealReasons}}

المستندات المرفقة:
{{attachedDocuments}}

أرجو النظر في هذا الطعن وإلغاء التكليف المذكور أو تعديله.

مع الاحترام،
التوقيع: ___________
التاريخ: {{submissionDate}}`,
		RequiredFields: []string{"taxpayerName", "taxId", "taxAssessmentNumber", "disputedAmount", "appealReasons"},
	},
}
