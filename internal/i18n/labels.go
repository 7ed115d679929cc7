package i18n

// labels are the fixed interface texts of the templates, English first.
// Templates refer to them by key, e.g. {{.T "nav.home"}}.
var labels = map[string][2]string{
	"nav.home":       {"Home", "خانه"},
	"nav.cart":       {"Cart", "سبد خرید"},
	"nav.profile":    {"Profile", "پروفایل"},
	"nav.categories": {"Categories", "دسته‌بندی‌ها"},
	"nav.products":   {"Products", "محصولات"},
	"nav.login":      {"Log in", "ورود"},
	"nav.logout":     {"Log out", "خروج"},
	"nav.register":   {"Register", "ثبت‌نام"},

	"form.name":     {"Name", "نام"},
	"form.email":    {"Email", "ایمیل"},
	"form.password": {"Password", "رمز عبور"},
	"form.save":     {"Save", "ذخیره"},
	"form.cancel":   {"Cancel", "انصراف"},
	"form.edit":     {"Edit", "ویرایش"},
	"form.delete":   {"Delete", "حذف"},

	"home.title":       {"Products", "محصولات"},
	"home.empty":       {"No products yet.", "هنوز محصولی وجود ندارد."},
	"home.from":        {"from %s", "از %s"},
	"error.title":      {"Something went wrong", "خطایی رخ داد"},
	"login.title":      {"Log in", "ورود"},
	"login.no_account": {"No account yet? Register", "حساب کاربری ندارید؟ ثبت‌نام کنید"},
	"register.title":   {"Create an account", "ایجاد حساب کاربری"},

	"product.title":       {"Product", "محصول"},
	"product.brand":       {"Brand", "برند"},
	"product.sku":         {"SKU", "کد کالا"},
	"product.price":       {"Price", "قیمت"},
	"product.stock":       {"Stock", "موجودی"},
	"product.attributes":  {"Attributes", "ویژگی‌ها"},
	"product.quantity":    {"Quantity", "تعداد"},
	"product.add_to_cart": {"Add to cart", "افزودن به سبد خرید"},

	"cart.title":   {"Your cart", "سبد خرید شما"},
	"cart.product": {"Product", "محصول"},
	"cart.total":   {"Total", "جمع کل"},
	"cart.empty":   {"Your cart is empty.", "سبد خرید شما خالی است."},

	"profile.title": {"Profile", "پروفایل"},
	"profile.role":  {"Role", "نقش"},
	"profile.admin": {"Open the admin area", "ورود به بخش مدیریت"},

	"categories.title":      {"Category management", "مدیریت دسته‌بندی‌ها"},
	"categories.new":        {"New category", "دسته‌بندی جدید"},
	"categories.edit":       {"Edit category", "ویرایش دسته‌بندی"},
	"categories.create":     {"Create category", "ایجاد دسته‌بندی"},
	"categories.parent":     {"Parent category", "دسته‌بندی والد"},
	"categories.no_parent":  {"None (root category)", "بدون والد (دسته‌بندی اصلی)"},
	"categories.image_url":  {"Image URL", "آدرس تصویر"},
	"categories.image_file": {"Or upload an image", "یا تصویری بارگذاری کنید"},
	"categories.empty":      {"No categories yet.", "هنوز دسته‌بندی‌ای وجود ندارد."},

	"products.title":    {"Product management", "مدیریت محصولات"},
	"products.new":      {"Add product", "افزودن محصول"},
	"products.variants": {"Variants", "تنوع‌ها"},

	"wizard.title":           {"Add product", "افزودن محصول"},
	"wizard.step_basic":      {"Basic information", "اطلاعات پایه"},
	"wizard.step_variants":   {"Variants", "تنوع‌ها"},
	"wizard.step_review":     {"Review", "بازبینی"},
	"wizard.description":     {"Description", "توضیحات"},
	"wizard.category":        {"Category", "دسته‌بندی"},
	"wizard.primary_images":  {"Main images", "تصاویر اصلی"},
	"wizard.images":          {"Images", "تصاویر"},
	"wizard.variant":         {"Variant", "تنوع"},
	"wizard.attribute_name":  {"Attribute", "ویژگی"},
	"wizard.attribute_value": {"Value", "مقدار"},
	"wizard.add_attribute":   {"Add attribute", "افزودن ویژگی"},
	"wizard.add_variant":     {"Add variant", "افزودن تنوع"},
	"wizard.remove_variant":  {"Remove variant", "حذف تنوع"},
	"wizard.back":            {"Back", "قبلی"},
	"wizard.next":            {"Next", "بعدی"},
	"wizard.submit":          {"Submit", "ثبت نهایی"},
}
