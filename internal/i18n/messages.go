package i18n

// Message keys. Keys are dotted identifiers; the English text lives in the
// catalog below, never in the key.
const (
	// Categories
	CategoryNameRequired    = "category.name_required"
	CategoryDuplicate       = "category.duplicate"
	CategoryParentNotFound  = "category.parent_not_found"
	CategoryDepthLimit      = "category.depth_limit"
	CategoryHasProducts     = "category.has_products"
	CategoryPrecondition    = "category.precondition_failed"
	CategoryInternal        = "category.internal"
	CategoryCreateFailed    = "category.create_failed"
	CategoryInvalidResponse = "category.invalid_response"
	CategoryLoadFailed      = "category.load_failed"
	CategoryCreated         = "category.created"
	CategoryEditUnsupported = "category.edit_unsupported"
	CategoryDeleteNoop      = "category.delete_noop"
	CategoryUploadFailed    = "category.upload_failed"

	// Auth
	AuthLoginFailed     = "auth.login_failed"
	AuthTokenMissing    = "auth.token_missing"
	AuthRegisterFailed  = "auth.register_failed"
	AuthRegistered      = "auth.registered"
	AuthTooManyAttempts = "auth.too_many_attempts"
	Unexpected          = "error.unexpected"

	// Storefront
	CartLoginRequired  = "cart.login_required"
	CartAddFailed      = "cart.add_failed"
	CartAdded          = "cart.added"
	CartLoadFailed     = "cart.load_failed"
	ProductNotFound    = "product.not_found"
	ProductsLoadFailed = "product.load_failed"
	ProfileLoadFailed  = "profile.load_failed"

	// Product wizard
	WizardDraftExpired  = "wizard.draft_expired"
	WizardSubmitted     = "wizard.submitted"
	WizardInvalidPrice  = "wizard.invalid_price"
	WizardInvalidStock  = "wizard.invalid_stock"
	WizardImageInvalid  = "wizard.image_invalid"
	WizardPublishFailed = "wizard.publish_failed"

	// Form validation, one per validator tag
	ValidationRequired = "validation.required"
	ValidationEmail    = "validation.email"
	ValidationMin      = "validation.min"
	ValidationMax      = "validation.max"
	ValidationURL      = "validation.url"
	ValidationGTE      = "validation.gte"
	ValidationNumeric  = "validation.numeric"
	ValidationInvalid  = "validation.invalid"
)

var english = map[string]string{
	CategoryNameRequired:    "Category name cannot be empty.",
	CategoryDuplicate:       "A category with this name already exists at this level.",
	CategoryParentNotFound:  "Parent category not found.",
	CategoryDepthLimit:      "Category depth exceeds the limit (at most %d levels).",
	CategoryHasProducts:     "You cannot add a subcategory to a category that has products.",
	CategoryPrecondition:    "Precondition failed.",
	CategoryInternal:        "Internal server error while creating the category.",
	CategoryCreateFailed:    "Could not create the category.",
	CategoryInvalidResponse: "Invalid response from server.",
	CategoryLoadFailed:      "Could not load categories from the server.",
	CategoryCreated:         "Category created.",
	CategoryEditUnsupported: "Editing categories is not supported yet.",
	CategoryDeleteNoop:      "Deleting categories is not supported yet.",
	CategoryUploadFailed:    "Could not upload the image.",

	AuthLoginFailed:     "Failed to login.",
	AuthTokenMissing:    "Token not received from server.",
	AuthRegisterFailed:  "Failed to register.",
	AuthRegistered:      "Registration successful. You can now log in.",
	AuthTooManyAttempts: "Too many attempts. Please wait a minute and try again.",
	Unexpected:          "An unexpected error occurred.",

	CartLoginRequired:  "Please log in to add items to your cart.",
	CartAddFailed:      "Could not add item to cart.",
	CartAdded:          "Product added to cart!",
	CartLoadFailed:     "Could not load your cart.",
	ProductNotFound:    "Product not found.",
	ProductsLoadFailed: "Could not load products.",
	ProfileLoadFailed:  "Could not load your profile.",

	WizardDraftExpired:  "This product draft has expired. Please start again.",
	WizardSubmitted:     "Product submitted.",
	WizardInvalidPrice:  "Variant %d has an invalid price.",
	WizardInvalidStock:  "Variant %d has an invalid stock.",
	WizardImageInvalid:  "Unsupported image file.",
	WizardPublishFailed: "Could not create the product.",

	ValidationRequired: "This field is required",
	ValidationEmail:    "Invalid email format",
	ValidationMin:      "Must be at least %s characters",
	ValidationMax:      "Must be at most %s characters",
	ValidationURL:      "Invalid URL format",
	ValidationGTE:      "Must be greater than or equal to %s",
	ValidationNumeric:  "Must be numeric",
	ValidationInvalid:  "Invalid value",
}

var persian = map[string]string{
	CategoryNameRequired:    "نام دسته‌بندی نمی‌تواند خالی باشد.",
	CategoryDuplicate:       "دسته‌بندی با این نام در این سطح تکراری است.",
	CategoryParentNotFound:  "دسته‌بندی والد یافت نشد.",
	CategoryDepthLimit:      "عمق دسته‌بندی بیش از حد مجاز است (حداکثر %d سطح).",
	CategoryHasProducts:     "نمی‌توانید به دسته‌بندی‌ای که محصول دارد، زیردسته اضافه کنید.",
	CategoryPrecondition:    "شرط اولیه برآورده نشد.",
	CategoryInternal:        "خطای داخلی سرور در ایجاد دسته‌بندی.",
	CategoryCreateFailed:    "خطا در ایجاد دسته‌بندی.",
	CategoryInvalidResponse: "پاسخ نامعتبر از سرور.",
	CategoryLoadFailed:      "خطا در بارگذاری دسته‌بندی‌ها از سرور.",
	CategoryCreated:         "دسته‌بندی با موفقیت ایجاد شد.",
	CategoryEditUnsupported: "ویرایش دسته‌بندی هنوز پشتیبانی نمی‌شود.",
	CategoryDeleteNoop:      "حذف دسته‌بندی هنوز پشتیبانی نمی‌شود.",
	CategoryUploadFailed:    "بارگذاری تصویر ناموفق بود.",

	AuthLoginFailed:     "ورود ناموفق بود.",
	AuthTokenMissing:    "توکن از سرور دریافت نشد.",
	AuthRegisterFailed:  "ثبت‌نام ناموفق بود.",
	AuthRegistered:      "ثبت‌نام با موفقیت انجام شد. اکنون می‌توانید وارد شوید.",
	AuthTooManyAttempts: "تلاش‌های زیادی انجام شد. لطفاً یک دقیقه صبر کنید.",
	Unexpected:          "خطای غیرمنتظره‌ای رخ داد.",

	CartLoginRequired:  "برای افزودن محصول به سبد خرید ابتدا وارد شوید.",
	CartAddFailed:      "افزودن محصول به سبد خرید ناموفق بود.",
	CartAdded:          "محصول با موفقیت به سبد خرید اضافه شد!",
	CartLoadFailed:     "خطا در بارگذاری سبد خرید.",
	ProductNotFound:    "محصول یافت نشد.",
	ProductsLoadFailed: "خطا در بارگذاری محصولات.",
	ProfileLoadFailed:  "خطا در بارگذاری پروفایل.",

	WizardDraftExpired:  "پیش‌نویس این محصول منقضی شده است. لطفاً دوباره شروع کنید.",
	WizardSubmitted:     "محصول ثبت شد.",
	WizardInvalidPrice:  "قیمت تنوع %d نامعتبر است.",
	WizardInvalidStock:  "موجودی تنوع %d نامعتبر است.",
	WizardImageInvalid:  "فایل تصویر پشتیبانی نمی‌شود.",
	WizardPublishFailed: "خطا در ایجاد محصول.",

	ValidationRequired: "این فیلد الزامی است",
	ValidationEmail:    "قالب ایمیل نامعتبر است",
	ValidationMin:      "حداقل %s کاراکتر لازم است",
	ValidationMax:      "حداکثر %s کاراکتر مجاز است",
	ValidationURL:      "قالب آدرس نامعتبر است",
	ValidationGTE:      "باید بزرگ‌تر یا مساوی %s باشد",
	ValidationNumeric:  "باید عدد باشد",
	ValidationInvalid:  "مقدار نامعتبر است",
}
